// Package query holds the derived, read-only views over record collections:
// text search, calendar-month filtering, aggregate statistics and the
// days-until helpers that the reminder and report surfaces share.
//
// Every function is pure; none touches storage.
package query

import (
	"strings"

	"studiobooks/pkg/models"
)

// matchesQuery reports whether any of the fields contains q
// (case-insensitive substring).
func matchesQuery(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// SearchInvoices filters invoices whose customer name, event location, phone
// number or invoice number contains the query, case-insensitively. A blank
// query returns the input unchanged.
func SearchInvoices(invoices []models.Invoice, query string) []models.Invoice {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return invoices
	}

	matched := []models.Invoice{}
	for _, inv := range invoices {
		if matchesQuery(q, inv.CustomerName, inv.EventLocation, inv.PhoneNumber, inv.InvoiceNumber) {
			matched = append(matched, inv)
		}
	}
	return matched
}

// SearchShoots filters shoots whose client name, location, phone number,
// shoot type or notes contains the query, case-insensitively. A blank query
// returns the input unchanged.
func SearchShoots(shoots []models.ShootEntry, query string) []models.ShootEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return shoots
	}

	matched := []models.ShootEntry{}
	for _, s := range shoots {
		if matchesQuery(q, s.ClientName, s.Location, s.PhoneNumber, s.ShootType, s.Notes) {
			matched = append(matched, s)
		}
	}
	return matched
}
