package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"studiobooks/internal/query"
	"studiobooks/pkg/format"
	"studiobooks/pkg/models"
)

type reportRow struct {
	Date     string
	Client   string
	Type     string
	Location string
	Price    string
}

type reportView struct {
	MonthName string
	Year      int

	Rows []reportRow

	ShootCount   int
	ShootTotal   string
	ShootAverage string

	InvoiceCount   int
	InvoicedTotal  string
	AdvancedTotal  string
	BalanceTotal   string
	ExpensesTotal  string
	NetProfit      string
	NetProfitValue float64

	Branding models.BrandingProfile
	Logo     template.URL
}

// MonthlyReportHTML renders the month's shoots and money aggregates as a
// printable HTML report. Net profit is shoot revenue minus expenses; every
// figure arrives pre-aggregated so the renderer adds nothing of its own
// beyond the subtraction.
func MonthlyReportHTML(
	shoots []models.ShootEntry,
	stats query.MonthlyStats,
	year int,
	month time.Month,
	branding models.BrandingProfile,
	invoiceTotals query.InvoiceTotals,
	totalExpenses float64,
) (string, error) {
	rows := make([]reportRow, 0, len(shoots))
	for _, s := range shoots {
		rows = append(rows, reportRow{
			Date:     format.FormatDate(s.ShootDate),
			Client:   s.ClientName,
			Type:     s.ShootType,
			Location: s.Location,
			Price:    format.FormatCurrency(format.ParseMoney(s.Price)),
		})
	}

	netProfit := stats.Total - totalExpenses
	view := reportView{
		MonthName:      month.String(),
		Year:           year,
		Rows:           rows,
		ShootCount:     stats.Count,
		ShootTotal:     format.FormatCurrency(stats.Total),
		ShootAverage:   format.FormatCurrency(stats.Average),
		InvoiceCount:   invoiceTotals.Count,
		InvoicedTotal:  format.FormatCurrency(invoiceTotals.Invoiced),
		AdvancedTotal:  format.FormatCurrency(invoiceTotals.Advanced),
		BalanceTotal:   format.FormatCurrency(invoiceTotals.Balance),
		ExpensesTotal:  format.FormatCurrency(totalExpenses),
		NetProfit:      format.FormatCurrency(netProfit),
		NetProfitValue: netProfit,
		Branding:       branding,
		Logo:           template.URL(branding.LogoDataURI),
	}

	var out strings.Builder
	if err := reportTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("render: monthly report %s %d: %w", view.MonthName, year, err)
	}
	return out.String(), nil
}
