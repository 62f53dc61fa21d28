package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"studiobooks/internal/query"
	"studiobooks/pkg/models"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Record and list business expenses",
}

var expenseAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Record an expense",
	Example: `  studiobooks expense add --description "Lens rental" --amount 7500 --date 2026-08-18`,
	RunE:    runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses, most recent first, optionally for one month",
	RunE:  runExpenseList,
}

func init() {
	rootCmd.AddCommand(expenseCmd)
	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd)

	expenseAddCmd.Flags().String("description", "", "What the expense was for (required)")
	expenseAddCmd.Flags().String("amount", "", "Amount")
	expenseAddCmd.Flags().String("date", "", "Expense date, e.g. 2026-08-18 (required)")

	expenseListCmd.Flags().Int("year", 0, "Filter by calendar year (with --month)")
	expenseListCmd.Flags().Int("month", 0, "Filter by calendar month 1-12 (with --year)")
}

func runExpenseAdd(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	description, _ := cmd.Flags().GetString("description")
	amount, _ := cmd.Flags().GetString("amount")
	date, _ := cmd.Flags().GetString("date")

	exp, err := app.ledger.Expenses.Create(models.Expense{
		Description: description,
		Amount:      amount,
		Date:        date,
	})
	if err != nil {
		return err
	}
	return printJSON(exp)
}

func runExpenseList(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	expenses, err := app.ledger.Expenses.GetAll()
	if err != nil {
		return err
	}

	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	if year != 0 && month != 0 {
		expenses = query.ExpensesByMonth(expenses, year, time.Month(month))
	}
	return printJSON(expenses)
}
