// Package format holds the money and date parsing/formatting utilities shared
// by the query, reminder and render layers.
//
// Money fields throughout the data model are decimal strings exactly as the
// user entered them. ParseMoney is the single place they are coerced to
// numbers, with a documented zero-default contract: anything that does not
// parse is worth 0, never an error.
package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.English)

// ParseMoney converts a decimal string to a float. Grouping commas and
// surrounding whitespace are tolerated. Non-numeric input (including the
// empty string) yields 0.
func ParseMoney(s string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatCurrency renders amount with thousands grouping and exactly two
// decimals: FormatCurrency(1234.5) == "1,234.50".
func FormatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("%.2f", amount)
}
