package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiobooks/internal/query"
	"studiobooks/pkg/models"
)

func sampleInvoice() models.Invoice {
	return models.Invoice{
		ID:            "i1",
		InvoiceNumber: "0001",
		InvoiceDate:   "2026-08-01",
		CustomerName:  "Amara Silva",
		EventDate:     "2026-09-12",
		EventLocation: "Galle Face Hotel",
		PhoneNumber:   "0771234567",
		Items: []models.LineItem{
			{Description: "Full day coverage", Quantity: "1"},
			{Description: "Framed enlargement", Quantity: "---"},
		},
		FullPrice:      "50,000",
		AdvancePayment: "20000",
	}
}

func sampleBranding() models.BrandingProfile {
	return models.BrandingProfile{
		BusinessName: "Lumen Studio",
		Tagline:      "Moments, kept",
		Phone:        "0719876543",
		Email:        "hello@lumen.example",
		BankName:     "Commercial Bank",
		AccountName:  "Lumen Studio",
		AccountNo:    "8001234567",
		FooterNote:   "Thank you for your business",
	}
}

func TestInvoiceHTMLAllVariants(t *testing.T) {
	inv := sampleInvoice()
	branding := sampleBranding()
	theme := models.DefaultColorTheme()

	for _, style := range []string{
		models.StyleClassic, models.StyleModern, models.StyleMinimal,
		models.StyleElegant, models.StyleBold,
	} {
		t.Run(style, func(t *testing.T) {
			html, err := InvoiceHTML(inv, branding, theme, style)
			require.NoError(t, err)

			assert.Contains(t, html, "Amara Silva")
			assert.Contains(t, html, "0001")
			assert.Contains(t, html, "Galle Face Hotel")
			assert.Contains(t, html, "12.Sep.2026")
			assert.Contains(t, html, "Full day coverage")
			// Quantity is display text, passed through untouched.
			assert.Contains(t, html, "---")
			assert.Contains(t, html, "50,000.00")
			assert.Contains(t, html, "20,000.00")
			assert.Contains(t, html, "30,000.00")
			assert.Contains(t, html, "Lumen Studio")
			assert.Contains(t, html, "Thank you for your business")
		})
	}
}

func TestInvoiceHTMLUnknownStyleFallsBackToClassic(t *testing.T) {
	inv := sampleInvoice()
	branding := sampleBranding()
	theme := models.DefaultColorTheme()

	classic, err := InvoiceHTML(inv, branding, theme, models.StyleClassic)
	require.NoError(t, err)
	fallback, err := InvoiceHTML(inv, branding, theme, "brutalist")
	require.NoError(t, err)

	assert.Equal(t, classic, fallback)
}

func TestInvoiceHTMLMissingFields(t *testing.T) {
	inv := models.Invoice{ID: "i2", InvoiceNumber: "0002", CustomerName: "B"}

	html, err := InvoiceHTML(inv, models.BrandingProfile{}, models.DefaultColorTheme(), models.StyleMinimal)
	require.NoError(t, err)

	// Blank money fields parse to zero, never an error.
	assert.Contains(t, html, "0.00")
}

func TestInvoiceHTMLLogoDataURI(t *testing.T) {
	branding := sampleBranding()
	branding.LogoDataURI = "data:image/png;base64,iVBORw0KGgo="

	html, err := InvoiceHTML(sampleInvoice(), branding, models.DefaultColorTheme(), models.StyleClassic)
	require.NoError(t, err)

	assert.Contains(t, html, "data:image/png;base64,iVBORw0KGgo=")
	assert.NotContains(t, html, "ZgotmplZ")
}

func TestMonthlyReportHTML(t *testing.T) {
	shoots := []models.ShootEntry{
		{ClientName: "A", ShootType: models.ShootTypeWedding, ShootDate: "2026-08-08", Location: "Kandy", Price: "40,000"},
		{ClientName: "B", ShootType: models.ShootTypeCasual, ShootDate: "2026-08-20", Price: "10,000"},
	}
	stats := query.MonthlyStats{Count: 2, Total: 50000, Average: 25000}
	totals := query.InvoiceTotals{Count: 1, Invoiced: 45000, Advanced: 15000, Balance: 30000}

	html, err := MonthlyReportHTML(shoots, stats, 2026, time.August, sampleBranding(), totals, 12500)
	require.NoError(t, err)

	assert.Contains(t, html, "August")
	assert.Contains(t, html, "2026")
	assert.Contains(t, html, "Kandy")
	assert.Contains(t, html, "40,000.00")
	assert.Contains(t, html, "50,000.00")
	assert.Contains(t, html, "12,500.00")
	// Net profit is shoot revenue minus expenses.
	assert.Contains(t, html, "37,500.00")
	assert.Contains(t, html, `"value profit"`)
}

func TestMonthlyReportHTMLLoss(t *testing.T) {
	stats := query.MonthlyStats{Count: 0, Total: 0, Average: 0}

	html, err := MonthlyReportHTML(nil, stats, 2026, time.January, models.BrandingProfile{}, query.InvoiceTotals{}, 5000)
	require.NoError(t, err)

	assert.Contains(t, html, `"value loss"`)
	assert.NotContains(t, html, `"value profit"`)
}

func ExampleInvoiceHTML() {
	inv := models.Invoice{
		InvoiceNumber:  "0042",
		CustomerName:   "Nadia Perera",
		FullPrice:      "30,000",
		AdvancePayment: "10,000",
	}

	html, err := InvoiceHTML(inv, models.BrandingProfile{BusinessName: "Lumen Studio"}, models.DefaultColorTheme(), models.StyleModern)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(strings.Contains(html, "Nadia Perera"))
	fmt.Println(strings.Contains(html, "20,000.00"))
	// Output:
	// true
	// true
}
