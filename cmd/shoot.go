package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"studiobooks/internal/query"
	"studiobooks/pkg/models"
)

var shootCmd = &cobra.Command{
	Use:   "shoot",
	Short: "Log and browse completed shoots",
}

var shootLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a completed shoot",
	Example: `  studiobooks shoot log --client "Amara Silva" --date 2026-08-20 \
    --time "4:30 PM" --type Wedding --location "Villa Rosa" \
    --price 45000 --advance 15000`,
	RunE: runShootLog,
}

var shootListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged shoots, most recent first",
	Long: `List logged shoots sorted by shoot date descending. A search term filters
by client name, location, phone, shoot type or notes; a year and month filter
to a single local calendar month.`,
	RunE: runShootList,
}

var shootStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show count, revenue and average price for a month of shoots",
	RunE:  runShootStats,
}

func init() {
	rootCmd.AddCommand(shootCmd)
	shootCmd.AddCommand(shootLogCmd, shootListCmd, shootStatsCmd)

	shootLogCmd.Flags().String("client", "", "Client name (required)")
	shootLogCmd.Flags().String("date", "", "Shoot date, e.g. 2026-08-20 (required)")
	shootLogCmd.Flags().String("time", "", "Shoot time, e.g. \"4:30 PM\"")
	shootLogCmd.Flags().String("type", "", "Shoot type: Bridal, Wedding, Birthday, Pre-shoot, Events, Casual, Commercial")
	shootLogCmd.Flags().String("location", "", "Location")
	shootLogCmd.Flags().String("salon", "", "Salon name")
	shootLogCmd.Flags().String("model", "", "Model name")
	shootLogCmd.Flags().String("price", "", "Price")
	shootLogCmd.Flags().String("advance", "", "Advance paid")
	shootLogCmd.Flags().String("phone", "", "Phone number(s)")
	shootLogCmd.Flags().String("notes", "", "Notes")

	shootListCmd.Flags().StringP("search", "s", "", "Filter by client, location, phone, type or notes")
	shootListCmd.Flags().Int("year", 0, "Filter by calendar year (with --month)")
	shootListCmd.Flags().Int("month", 0, "Filter by calendar month 1-12 (with --year)")

	shootStatsCmd.Flags().Int("year", time.Now().Year(), "Calendar year")
	shootStatsCmd.Flags().Int("month", int(time.Now().Month()), "Calendar month 1-12")
}

func runShootLog(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	client, _ := cmd.Flags().GetString("client")
	date, _ := cmd.Flags().GetString("date")
	shootTime, _ := cmd.Flags().GetString("time")
	shootType, _ := cmd.Flags().GetString("type")
	location, _ := cmd.Flags().GetString("location")
	salon, _ := cmd.Flags().GetString("salon")
	model, _ := cmd.Flags().GetString("model")
	price, _ := cmd.Flags().GetString("price")
	advance, _ := cmd.Flags().GetString("advance")
	phone, _ := cmd.Flags().GetString("phone")
	notes, _ := cmd.Flags().GetString("notes")

	entry, err := app.ledger.Shoots.Create(models.ShootEntry{
		ClientName:  client,
		ShootDate:   date,
		ShootTime:   shootTime,
		ShootType:   shootType,
		Location:    location,
		SalonName:   salon,
		ModelName:   model,
		Price:       price,
		AdvancePaid: advance,
		PhoneNumber: phone,
		Notes:       notes,
	})
	if err != nil {
		return err
	}
	return printJSON(entry)
}

func runShootList(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	shoots, err := app.ledger.Shoots.GetAll()
	if err != nil {
		return err
	}

	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	if year != 0 && month != 0 {
		shoots = query.ShootsByMonth(shoots, year, time.Month(month))
	}

	search, _ := cmd.Flags().GetString("search")
	return printJSON(query.SearchShoots(shoots, search))
}

func runShootStats(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	shoots, err := app.ledger.Shoots.GetAll()
	if err != nil {
		return err
	}

	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be 1-12, got %d", month)
	}

	stats := query.ShootStats(query.ShootsByMonth(shoots, year, time.Month(month)))
	return printJSON(stats)
}
