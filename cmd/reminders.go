package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"studiobooks/internal/config"
	"studiobooks/internal/logger"
	"studiobooks/internal/reminder"
	"studiobooks/pkg/models"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Manage reminder notifications and their settings",
}

var remindersSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rebuild every reminder from current records and settings",
	Long: `Cancel all scheduled notifications and re-schedule one for every
non-completed upcoming shoot and every invoice, gated by the reminder
settings. This is a full rebuild, not a diff.`,
	RunE: runRemindersSync,
}

var remindersSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change reminder settings",
	Example: `  # Show current settings
  studiobooks reminders settings

  # Turn shoot reminders on with a 3 hour lead time
  studiobooks reminders settings --shoots on --lead 3h`,
	RunE: runRemindersSettings,
}

var remindersWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the notification dispatcher until interrupted",
	Long: `Rebuild reminders, then keep the process alive dispatching notifications
as their trigger times pass. Intended for a terminal session or a service
unit; Ctrl-C stops it.`,
	RunE: runRemindersWatch,
}

func init() {
	rootCmd.AddCommand(remindersCmd)
	remindersCmd.AddCommand(remindersSyncCmd, remindersSettingsCmd, remindersWatchCmd)

	remindersSettingsCmd.Flags().String("shoots", "", "Shoot reminders: on or off")
	remindersSettingsCmd.Flags().String("invoices", "", "Invoice reminders: on or off")
	remindersSettingsCmd.Flags().String("lead", "", "Lead time: 1h, 3h, 1d or 2d")
}

// syncAll rebuilds the reminder state from the full record collections.
func syncAll(app *appContext) error {
	upcoming, err := app.ledger.Upcoming.GetAll()
	if err != nil {
		return err
	}
	invoices, err := app.ledger.Invoices.GetAll()
	if err != nil {
		return err
	}
	return app.scheduler.RescheduleAll(upcoming, invoices)
}

func runRemindersSync(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	if err := syncAll(app); err != nil {
		return err
	}
	fmt.Println("Reminders rebuilt.")
	return nil
}

// applyToggle maps an on/off flag value onto target. An empty value leaves it
// unchanged.
func applyToggle(value string, target *bool) error {
	switch value {
	case "":
		return nil
	case "on":
		*target = true
	case "off":
		*target = false
	default:
		return fmt.Errorf("expected on or off, got %q", value)
	}
	return nil
}

func runRemindersSettings(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("reminders-cmd")

	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	settings, err := app.ledger.Settings.ReminderSettings()
	if err != nil {
		return err
	}
	previous := settings

	shoots, _ := cmd.Flags().GetString("shoots")
	invoices, _ := cmd.Flags().GetString("invoices")
	lead, _ := cmd.Flags().GetString("lead")

	if err := applyToggle(shoots, &settings.ShootReminders); err != nil {
		return err
	}
	if err := applyToggle(invoices, &settings.InvoiceReminders); err != nil {
		return err
	}
	if lead != "" {
		if !models.IsValidLeadTime(lead) {
			return fmt.Errorf("unknown lead time %q (use 1h, 3h, 1d or 2d)", lead)
		}
		settings.LeadTime = lead
	}

	if settings == previous {
		return printJSON(settings)
	}

	if err := app.ledger.Settings.SaveReminderSettings(settings); err != nil {
		return err
	}
	app.scheduler.UpdateSettings(settings)

	// A settings change rebuilds the whole notification state. Permission
	// denial reverts the change and surfaces; anything else already degraded
	// silently inside the scheduler.
	if err := syncAll(app); err != nil {
		if errors.Is(err, reminder.ErrPermissionDenied) {
			if saveErr := app.ledger.Settings.SaveReminderSettings(previous); saveErr != nil {
				log.Error().Err(saveErr).Msg("Failed to revert reminder settings")
			}
			return fmt.Errorf("notification permission denied; settings unchanged. Enable notifications for this app and retry")
		}
		return err
	}

	return printJSON(settings)
}

func runRemindersWatch(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("reminders-cmd")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	if err := syncAll(app); err != nil {
		return err
	}
	if err := app.notifier.Start(cfg.DispatchSpec); err != nil {
		return err
	}
	defer app.notifier.Stop()

	fmt.Println("Dispatching reminders; Ctrl-C to stop.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("Dispatcher interrupted, shutting down")
	return nil
}
