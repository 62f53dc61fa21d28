// Package render projects invoices and monthly aggregates into self-contained
// HTML documents for printing and sharing.
//
// All functions are pure: money and dates are pre-formatted through pkg/format
// before interpolation, no independent rounding happens here, and nothing
// touches the filesystem or network. Missing record fields render as empty
// strings.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"studiobooks/pkg/format"
	"studiobooks/pkg/models"
)

var funcMap = template.FuncMap{
	"formatMoney": format.FormatCurrency,
	"formatDate":  format.FormatDate,
}

var invoiceTemplates = map[string]*template.Template{
	models.StyleClassic: mustParse("invoice-classic", invoiceClassicTemplate),
	models.StyleModern:  mustParse("invoice-modern", invoiceModernTemplate),
	models.StyleMinimal: mustParse("invoice-minimal", invoiceMinimalTemplate),
	models.StyleElegant: mustParse("invoice-elegant", invoiceElegantTemplate),
	models.StyleBold:    mustParse("invoice-bold", invoiceBoldTemplate),
}

var reportTemplate = mustParse("monthly-report", monthlyReportTemplate)

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcMap).Parse(text))
}

// itemRow is one rendered line item. Quantity is display text and is passed
// through untouched.
type itemRow struct {
	Description string
	Quantity    string
}

// invoiceView is the computed data shared by every style variant.
type invoiceView struct {
	Number        string
	InvoiceDate   string
	CustomerName  string
	EventDate     string
	EventLocation string
	PhoneNumber   string
	Items         []itemRow

	Total   string
	Advance string
	Balance string

	Branding models.BrandingProfile
	// Logo carries the branding data URI pre-marked as a URL so the base64
	// image survives template sanitization.
	Logo  template.URL
	Theme models.ColorTheme
}

// buildInvoiceView computes the fields every variant shares. The balance
// follows the invariant balance = fullPrice - advancePayment under the
// zero-default money parse.
func buildInvoiceView(inv models.Invoice, branding models.BrandingProfile, theme models.ColorTheme) invoiceView {
	full := format.ParseMoney(inv.FullPrice)
	advance := format.ParseMoney(inv.AdvancePayment)

	items := make([]itemRow, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, itemRow{Description: item.Description, Quantity: item.Quantity})
	}

	return invoiceView{
		Number:        inv.InvoiceNumber,
		InvoiceDate:   format.FormatDate(inv.InvoiceDate),
		CustomerName:  inv.CustomerName,
		EventDate:     format.FormatDate(inv.EventDate),
		EventLocation: inv.EventLocation,
		PhoneNumber:   inv.PhoneNumber,
		Items:         items,
		Total:         format.FormatCurrency(full),
		Advance:       format.FormatCurrency(advance),
		Balance:       format.FormatCurrency(full - advance),
		Branding:      branding,
		Logo:          template.URL(branding.LogoDataURI),
		Theme:         theme,
	}
}

// InvoiceHTML renders an invoice as a printable HTML document in the given
// style variant. Unknown variants fall back to the classic layout.
func InvoiceHTML(inv models.Invoice, branding models.BrandingProfile, theme models.ColorTheme, style string) (string, error) {
	tmpl, ok := invoiceTemplates[style]
	if !ok {
		tmpl = invoiceTemplates[models.StyleClassic]
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, buildInvoiceView(inv, branding, theme)); err != nil {
		return "", fmt.Errorf("render: invoice %s: %w", inv.InvoiceNumber, err)
	}
	return out.String(), nil
}
