package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	assert.Equal(t, 1234.5, ParseMoney("1234.5"))
	assert.Equal(t, 1234.5, ParseMoney("1,234.5"))
	assert.Equal(t, 1234.5, ParseMoney("  1234.5  "))
	assert.Equal(t, 45000.0, ParseMoney("45000"))
}

func TestParseMoneyZeroDefault(t *testing.T) {
	// Non-numeric input is worth zero, never an error.
	assert.Equal(t, 0.0, ParseMoney(""))
	assert.Equal(t, 0.0, ParseMoney("---"))
	assert.Equal(t, 0.0, ParseMoney("TBD"))
	assert.Equal(t, 0.0, ParseMoney("12 500"))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "1,234.50", FormatCurrency(1234.5))
	assert.Equal(t, "0.00", FormatCurrency(0))
	assert.Equal(t, "45,000.00", FormatCurrency(45000))
	assert.Equal(t, "999.99", FormatCurrency(999.99))
	assert.Equal(t, "1,234,567.89", FormatCurrency(1234567.89))
}

func TestBalanceInvariant(t *testing.T) {
	// balance = fullPrice - advancePayment under zero-default parsing.
	cases := []struct {
		full, advance string
		want          float64
	}{
		{"45000", "15000", 30000},
		{"45000", "", 45000},
		{"", "15000", -15000},
		{"not-a-number", "also-not", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseMoney(tc.full)-ParseMoney(tc.advance))
	}
}
