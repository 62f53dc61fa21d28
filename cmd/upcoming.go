package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"studiobooks/internal/logger"
	"studiobooks/internal/query"
	"studiobooks/internal/reminder"
	"studiobooks/pkg/models"
)

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Schedule and manage upcoming shoots",
}

var upcomingAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Schedule an upcoming shoot and its reminder",
	Long: `Schedule a future booking. If shoot reminders are enabled, a notification
is scheduled at the configured lead time before the shoot. Reminder failures
never block the save: an unparseable date or a trigger time already in the
past simply skips the reminder.`,
	Example: `  studiobooks upcoming add --client "Nadia Perera" --date 2026-09-12 \
    --time "10:00 AM" --type Bridal --location "Mount Lavinia" \
    --package-price 60000 --package-advance 20000`,
	RunE: runUpcomingAdd,
}

var upcomingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming shoots from today, soonest first",
	RunE:  runUpcomingList,
}

var upcomingCompleteCmd = &cobra.Command{
	Use:   "complete [upcoming-id]",
	Short: "Mark a booking completed and log it as a shoot",
	Long: `Mark an upcoming shoot completed. The booking is kept (flagged completed),
a shoot entry is logged as a snapshot of it, and its reminder is cancelled.
Editing or deleting the booking afterwards never changes the logged shoot.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpcomingComplete,
}

var upcomingDeleteCmd = &cobra.Command{
	Use:   "delete [upcoming-id]",
	Short: "Delete a booking and cancel its reminder",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpcomingDelete,
}

func init() {
	rootCmd.AddCommand(upcomingCmd)
	upcomingCmd.AddCommand(upcomingAddCmd, upcomingListCmd, upcomingCompleteCmd, upcomingDeleteCmd)

	upcomingAddCmd.Flags().String("client", "", "Client name (required)")
	upcomingAddCmd.Flags().String("date", "", "Shoot date, e.g. 2026-09-12 (required)")
	upcomingAddCmd.Flags().String("time", "", "Shoot time, e.g. \"10:00 AM\"")
	upcomingAddCmd.Flags().String("type", "", "Shoot type")
	upcomingAddCmd.Flags().String("location", "", "Location")
	upcomingAddCmd.Flags().String("salon", "", "Salon name")
	upcomingAddCmd.Flags().String("model", "", "Model name")
	upcomingAddCmd.Flags().String("package-price", "", "Package price")
	upcomingAddCmd.Flags().String("package-advance", "", "Package advance")
	upcomingAddCmd.Flags().String("phone", "", "Phone number(s)")
	upcomingAddCmd.Flags().String("notes", "", "Notes")

	upcomingListCmd.Flags().Bool("all", false, "Include past and completed bookings")
}

func runUpcomingAdd(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("upcoming-cmd")

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
	price, _ := cmd.Flags().GetString("package-price")
	advance, _ := cmd.Flags().GetString("package-advance")
	phone, _ := cmd.Flags().GetString("phone")
	notes, _ := cmd.Flags().GetString("notes")

	shoot, err := app.ledger.Upcoming.Create(models.UpcomingShoot{
		ClientName:     client,
		ShootDate:      date,
		ShootTime:      shootTime,
		ShootType:      shootType,
		Location:       location,
		SalonName:      salon,
		ModelName:      model,
		PackagePrice:   price,
		PackageAdvance: advance,
		PhoneNumber:    phone,
		Notes:          notes,
	})
	if err != nil {
		return err
	}

	settings, err := app.ledger.Settings.ReminderSettings()
	if err == nil && settings.ShootReminders {
		if _, err := app.scheduler.ScheduleShoot(*shoot); err != nil {
			log.Warn().Err(err).Str("id", shoot.ID).Msg("Shoot reminder not scheduled")
		}
	}

	return printJSON(shoot)
}

func runUpcomingList(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	shoots, err := app.ledger.Upcoming.GetAll()
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	if !all {
		shoots = query.UpcomingFromToday(shoots)
	}
	return printJSON(shoots)
}

func runUpcomingComplete(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	shoot, entry, err := app.ledger.CompleteUpcomingShoot(args[0])
	if err != nil {
		return err
	}
	if err := app.scheduler.Cancel(reminder.ShootReminderKey(shoot.ID)); err != nil {
		return err
	}

	fmt.Printf("Booking for %s completed; logged as shoot %s.\n", shoot.ClientName, entry.ID)
	return nil
}

func runUpcomingDelete(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	if err := app.ledger.Upcoming.Delete(args[0]); err != nil {
		return err
	}
	if err := app.scheduler.Cancel(reminder.ShootReminderKey(args[0])); err != nil {
		return err
	}

	fmt.Println("Booking deleted.")
	return nil
}
