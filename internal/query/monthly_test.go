package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"studiobooks/pkg/models"
)

func TestShootsByMonth(t *testing.T) {
	shoots := []models.ShootEntry{
		{ID: "a", ShootDate: "2026-08-05"},
		{ID: "b", ShootDate: "2026-08-28"},
		{ID: "c", ShootDate: "2026-07-31"},
		{ID: "d", ShootDate: "garbled"},
	}

	august := ShootsByMonth(shoots, 2026, time.August)
	assert.Len(t, august, 2)
	assert.Empty(t, ShootsByMonth(shoots, 2025, time.August))
}

func TestExpensesByMonth(t *testing.T) {
	expenses := []models.Expense{
		{ID: "a", Date: "2026-08-18", Amount: "7500"},
		{ID: "b", Date: "2026-09-01", Amount: "1200"},
	}

	assert.Len(t, ExpensesByMonth(expenses, 2026, time.August), 1)
	assert.Equal(t, 7500.0, TotalExpenses(ExpensesByMonth(expenses, 2026, time.August)))
}

func TestShootStats(t *testing.T) {
	shoots := []models.ShootEntry{
		{Price: "45000"},
		{Price: "15000"},
		{Price: "free of charge"}, // counts as zero
	}

	stats := ShootStats(shoots)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 60000.0, stats.Total)
	assert.Equal(t, 20000.0, stats.Average)
}

func TestShootStatsEmpty(t *testing.T) {
	stats := ShootStats(nil)
	assert.Equal(t, 0, stats.Count)
	assert.Equal(t, 0.0, stats.Total)
	assert.Equal(t, 0.0, stats.Average)
}

func TestInvoiceStats(t *testing.T) {
	invoices := []models.Invoice{
		{FullPrice: "45000", AdvancePayment: "15000"},
		{FullPrice: "20000", AdvancePayment: ""},
		{FullPrice: "n/a", AdvancePayment: "500"},
	}

	totals := InvoiceStats(invoices)
	assert.Equal(t, 3, totals.Count)
	assert.Equal(t, 65000.0, totals.Invoiced)
	assert.Equal(t, 15500.0, totals.Advanced)
	assert.Equal(t, 49500.0, totals.Balance)
}
