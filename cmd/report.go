package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"studiobooks/internal/query"
	"studiobooks/internal/render"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render printable reports",
}

var reportMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Render the monthly business report as HTML",
	Long: `Render a month's shoots, invoice totals, expenses and net profit as a
printable HTML report. Months are local calendar months; net profit is shoot
revenue minus expenses for the month.`,
	Example: `  studiobooks report monthly --year 2026 --month 8 -o august.html`,
	RunE:    runReportMonthly,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportMonthlyCmd)

	reportMonthlyCmd.Flags().Int("year", time.Now().Year(), "Calendar year")
	reportMonthlyCmd.Flags().Int("month", int(time.Now().Month()), "Calendar month 1-12")
	reportMonthlyCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

func runReportMonthly(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	year, _ := cmd.Flags().GetInt("year")
	monthNum, _ := cmd.Flags().GetInt("month")
	if monthNum < 1 || monthNum > 12 {
		return fmt.Errorf("month must be 1-12, got %d", monthNum)
	}
	month := time.Month(monthNum)

	shoots, err := app.ledger.Shoots.GetAll()
	if err != nil {
		return err
	}
	invoices, err := app.ledger.Invoices.GetAll()
	if err != nil {
		return err
	}
	expenses, err := app.ledger.Expenses.GetAll()
	if err != nil {
		return err
	}
	branding, err := app.ledger.Settings.Branding()
	if err != nil {
		return err
	}

	monthShoots := query.ShootsByMonth(shoots, year, month)
	html, err := render.MonthlyReportHTML(
		monthShoots,
		query.ShootStats(monthShoots),
		year,
		month,
		branding,
		query.InvoiceStats(query.InvoicesByMonth(invoices, year, month)),
		query.TotalExpenses(query.ExpensesByMonth(expenses, year, month)),
	)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	return writeOutput(outputPath, html)
}
