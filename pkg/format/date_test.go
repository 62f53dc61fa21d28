package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateLayouts(t *testing.T) {
	for _, input := range []string{"2024-03-05", "05/03/2024", "5/3/2024", "05-03-2024"} {
		parsed, err := ParseDate(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, 2024, parsed.Year())
		assert.Equal(t, time.March, parsed.Month())
		assert.Equal(t, 5, parsed.Day())
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("4:30 PM")
	require.NoError(t, err)
	assert.Equal(t, 16, hour)
	assert.Equal(t, 30, minute)

	hour, minute, err = ParseClock("09:15 am")
	require.NoError(t, err)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 15, minute)

	hour, minute, err = ParseClock("18:05")
	require.NoError(t, err)
	assert.Equal(t, 18, hour)
	assert.Equal(t, 5, minute)

	_, _, err = ParseClock("half past four")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05.Mar.2024", FormatDate("2024-03-05"))
	assert.Equal(t, "01.Jan.2026", FormatDate("01/01/2026"))
}

func TestFormatDatePassthrough(t *testing.T) {
	// Unparseable input comes back unchanged, not as an error.
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
	assert.Equal(t, "", FormatDate(""))
}
