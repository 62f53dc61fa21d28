package query

import (
	"time"

	"studiobooks/pkg/format"
	"studiobooks/pkg/models"
)

// MonthlyStats are the aggregates for one month of shoots.
type MonthlyStats struct {
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
}

// inMonth reports whether dateStr falls in the given local-calendar year and
// month. Decomposition is wall-clock local time, not UTC; records entered near
// a timezone change re-bucket with the device, which is the documented
// behavior. Unparseable dates never match.
func inMonth(dateStr string, year int, month time.Month) bool {
	t, err := format.ParseDate(dateStr)
	if err != nil {
		return false
	}
	return t.Year() == year && t.Month() == month
}

// ShootsByMonth returns the shoots whose shoot date falls in the given local
// calendar month.
func ShootsByMonth(shoots []models.ShootEntry, year int, month time.Month) []models.ShootEntry {
	matched := []models.ShootEntry{}
	for _, s := range shoots {
		if inMonth(s.ShootDate, year, month) {
			matched = append(matched, s)
		}
	}
	return matched
}

// ExpensesByMonth returns the expenses dated in the given local calendar
// month.
func ExpensesByMonth(expenses []models.Expense, year int, month time.Month) []models.Expense {
	matched := []models.Expense{}
	for _, e := range expenses {
		if inMonth(e.Date, year, month) {
			matched = append(matched, e)
		}
	}
	return matched
}

// ShootStats aggregates a month of shoots: count, price total (non-numeric
// prices count as zero) and average (zero for an empty month).
func ShootStats(shoots []models.ShootEntry) MonthlyStats {
	stats := MonthlyStats{Count: len(shoots)}
	for _, s := range shoots {
		stats.Total += format.ParseMoney(s.Price)
	}
	if stats.Count > 0 {
		stats.Average = stats.Total / float64(stats.Count)
	}
	return stats
}

// TotalExpenses sums expense amounts with the zero-default money contract.
func TotalExpenses(expenses []models.Expense) float64 {
	total := 0.0
	for _, e := range expenses {
		total += format.ParseMoney(e.Amount)
	}
	return total
}

// InvoiceTotals sums full prices, advances and the derived balances of the
// given invoices.
type InvoiceTotals struct {
	Count    int     `json:"count"`
	Invoiced float64 `json:"invoiced"`
	Advanced float64 `json:"advanced"`
	Balance  float64 `json:"balance"`
}

// InvoicesByMonth returns the invoices whose event date falls in the given
// local calendar month.
func InvoicesByMonth(invoices []models.Invoice, year int, month time.Month) []models.Invoice {
	matched := []models.Invoice{}
	for _, inv := range invoices {
		if inMonth(inv.EventDate, year, month) {
			matched = append(matched, inv)
		}
	}
	return matched
}

// InvoiceStats aggregates invoice money fields. Balance follows the invariant
// balance = fullPrice - advancePayment under zero-default parsing.
func InvoiceStats(invoices []models.Invoice) InvoiceTotals {
	totals := InvoiceTotals{Count: len(invoices)}
	for _, inv := range invoices {
		full := format.ParseMoney(inv.FullPrice)
		advance := format.ParseMoney(inv.AdvancePayment)
		totals.Invoiced += full
		totals.Advanced += advance
		totals.Balance += full - advance
	}
	return totals
}
