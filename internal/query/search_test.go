package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studiobooks/pkg/models"
)

func TestSearchInvoicesBlankQueryIsIdentity(t *testing.T) {
	invoices := []models.Invoice{
		{ID: "a", CustomerName: "Amara"},
		{ID: "b", CustomerName: "Nadia"},
	}

	assert.Equal(t, invoices, SearchInvoices(invoices, ""))
	assert.Equal(t, invoices, SearchInvoices(invoices, "   "))
}

func TestSearchInvoices(t *testing.T) {
	invoices := []models.Invoice{
		{ID: "a", CustomerName: "Amara Silva", EventLocation: "Villa Rosa"},
		{ID: "b", CustomerName: "Nadia Perera", PhoneNumber: "077-1234567"},
		{ID: "c", CustomerName: "Ruwan", InvoiceNumber: "0042"},
	}

	assert.Len(t, SearchInvoices(invoices, "AMARA"), 1)
	assert.Len(t, SearchInvoices(invoices, "villa"), 1)
	assert.Len(t, SearchInvoices(invoices, "1234"), 1)
	assert.Len(t, SearchInvoices(invoices, "0042"), 1)
	assert.Empty(t, SearchInvoices(invoices, "nothing here"))
}

func TestSearchShoots(t *testing.T) {
	shoots := []models.ShootEntry{
		{ID: "a", ClientName: "Amara Silva", ShootType: models.ShootTypeWedding},
		{ID: "b", ClientName: "Nadia", Location: "Mount Lavinia", Notes: "golden hour"},
	}

	assert.Equal(t, shoots, SearchShoots(shoots, ""))
	assert.Len(t, SearchShoots(shoots, "wedding"), 1)
	assert.Len(t, SearchShoots(shoots, "lavinia"), 1)
	assert.Len(t, SearchShoots(shoots, "golden"), 1)
	assert.Empty(t, SearchShoots(shoots, "bridal"))
}
