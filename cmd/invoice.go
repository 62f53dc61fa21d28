package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"studiobooks/internal/logger"
	"studiobooks/internal/query"
	"studiobooks/internal/reminder"
	"studiobooks/internal/render"
	"studiobooks/pkg/models"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Create, list, render and delete client invoices",
}

var invoiceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an invoice with the next sequential number",
	Long: `Create an invoice for a client. The invoice number is assigned from the
process-wide counter, zero-padded to 4 digits. Money amounts are free-form
decimal strings; anything that does not parse as a number is treated as zero
when totals are computed.`,
	Example: `  # Minimal invoice
  studiobooks invoice create --customer "Amara Silva" --full-price 45000

  # Full invoice with line items (description:quantity, quantity is free text)
  studiobooks invoice create --customer "Amara Silva" \
    --event-date 2026-09-12 --location "Villa Rosa" \
    --phone "077-1234567 / 071-7654321" \
    --item "Full day coverage:1" --item "Framed enlargement 16x24:---" \
    --full-price 45000 --advance 15000`,
	RunE: runInvoiceCreate,
}

var invoiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices, newest first, optionally filtered by search text",
	RunE:  runInvoiceList,
}

var invoiceShowCmd = &cobra.Command{
	Use:   "show [invoice-id]",
	Short: "Show a single invoice",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoiceShow,
}

var invoiceRenderCmd = &cobra.Command{
	Use:   "render [invoice-id]",
	Short: "Render an invoice as a printable HTML document",
	Long: `Render an invoice using the saved branding profile, color theme and style
variant. The output is a self-contained HTML document suitable for printing
or sharing.`,
	Example: `  studiobooks invoice render 1756368000000-k3x9p2 -o invoice-0001.html
  studiobooks invoice render 1756368000000-k3x9p2 --style elegant`,
	Args: cobra.ExactArgs(1),
	RunE: runInvoiceRender,
}

var invoiceDeleteCmd = &cobra.Command{
	Use:   "delete [invoice-id]",
	Short: "Delete an invoice and cancel its reminder",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoiceDelete,
}

func init() {
	rootCmd.AddCommand(invoiceCmd)
	invoiceCmd.AddCommand(invoiceCreateCmd, invoiceListCmd, invoiceShowCmd, invoiceRenderCmd, invoiceDeleteCmd)

	invoiceCreateCmd.Flags().String("customer", "", "Customer name (required)")
	invoiceCreateCmd.Flags().String("invoice-date", "", "Invoice date, e.g. 2026-09-01")
	invoiceCreateCmd.Flags().String("event-date", "", "Event date, e.g. 2026-09-12")
	invoiceCreateCmd.Flags().String("location", "", "Event location")
	invoiceCreateCmd.Flags().String("phone", "", "Phone number(s)")
	invoiceCreateCmd.Flags().StringArray("item", nil, "Line item as description:quantity (repeatable)")
	invoiceCreateCmd.Flags().String("full-price", "", "Full price")
	invoiceCreateCmd.Flags().String("advance", "", "Advance payment")

	invoiceListCmd.Flags().StringP("search", "s", "", "Filter by name, location, phone or invoice number")

	invoiceRenderCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	invoiceRenderCmd.Flags().String("style", "", "Style variant: classic, modern, minimal, elegant, bold (default: saved setting)")
}

// parseItemFlags splits repeated --item values on the last colon. A value
// without a colon becomes a description with empty quantity.
func parseItemFlags(raw []string) []models.LineItem {
	items := make([]models.LineItem, 0, len(raw))
	for _, value := range raw {
		if idx := strings.LastIndex(value, ":"); idx >= 0 {
			items = append(items, models.LineItem{
				Description: value[:idx],
				Quantity:    value[idx+1:],
			})
			continue
		}
		items = append(items, models.LineItem{Description: value})
	}
	return items
}

func runInvoiceCreate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("invoice-cmd")

	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	number, err := app.ledger.Invoices.NextInvoiceNumber()
	if err != nil {
		return err
	}

	customer, _ := cmd.Flags().GetString("customer")
	invoiceDate, _ := cmd.Flags().GetString("invoice-date")
	eventDate, _ := cmd.Flags().GetString("event-date")
	location, _ := cmd.Flags().GetString("location")
	phone, _ := cmd.Flags().GetString("phone")
	itemFlags, _ := cmd.Flags().GetStringArray("item")
	fullPrice, _ := cmd.Flags().GetString("full-price")
	advance, _ := cmd.Flags().GetString("advance")

	inv, err := app.ledger.Invoices.Create(models.Invoice{
		InvoiceNumber:  number,
		CustomerName:   customer,
		InvoiceDate:    invoiceDate,
		EventDate:      eventDate,
		EventLocation:  location,
		PhoneNumber:    phone,
		Items:          parseItemFlags(itemFlags),
		FullPrice:      fullPrice,
		AdvancePayment: advance,
	})
	if err != nil {
		return err
	}

	// Reminder scheduling degrades silently; the invoice is already saved.
	settings, err := app.ledger.Settings.ReminderSettings()
	if err == nil && settings.InvoiceReminders {
		if _, err := app.scheduler.ScheduleInvoice(*inv); err != nil {
			log.Warn().Err(err).Str("id", inv.ID).Msg("Invoice reminder not scheduled")
		}
	}

	return printJSON(inv)
}

func runInvoiceList(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	invoices, err := app.ledger.Invoices.GetAll()
	if err != nil {
		return err
	}

	search, _ := cmd.Flags().GetString("search")
	return printJSON(query.SearchInvoices(invoices, search))
}

func runInvoiceShow(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	inv, err := app.ledger.Invoices.GetByID(args[0])
	if err != nil {
		return err
	}
	return printJSON(inv)
}

func runInvoiceRender(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	inv, err := app.ledger.Invoices.GetByID(args[0])
	if err != nil {
		return err
	}

	branding, err := app.ledger.Settings.Branding()
	if err != nil {
		return err
	}
	theme, err := app.ledger.Settings.ColorTheme()
	if err != nil {
		return err
	}

	style, _ := cmd.Flags().GetString("style")
	if style == "" {
		style, err = app.ledger.Settings.StyleVariant()
		if err != nil {
			return err
		}
	}

	html, err := render.InvoiceHTML(*inv, branding, theme, style)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	return writeOutput(outputPath, html)
}

func runInvoiceDelete(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	if err := app.ledger.Invoices.Delete(args[0]); err != nil {
		return err
	}
	if err := app.scheduler.Cancel(reminder.InvoiceReminderKey(args[0])); err != nil {
		return err
	}

	fmt.Println("Invoice deleted.")
	return nil
}
