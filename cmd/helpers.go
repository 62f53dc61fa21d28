package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"studiobooks/internal/config"
	"studiobooks/internal/records"
	"studiobooks/internal/reminder"
	"studiobooks/internal/storage"
)

// appContext bundles everything a command needs: the open store, the record
// ledger and a reminder scheduler loaded with the saved settings. Commands run
// sequentially, so there is exactly one of these per invocation.
type appContext struct {
	store     *storage.SQLiteStore
	ledger    *records.Ledger
	scheduler *reminder.Scheduler
	notifier  *reminder.LocalNotifier
}

// openApp loads configuration, opens the database and wires the core.
func openApp() (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	store, err := storage.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	ledger := records.NewLedger(store)
	settings, err := ledger.Settings.ReminderSettings()
	if err != nil {
		store.Close()
		return nil, err
	}

	notifier := reminder.NewLocalNotifier()
	return &appContext{
		store:     store,
		ledger:    ledger,
		scheduler: reminder.NewScheduler(store, notifier, settings),
		notifier:  notifier,
	}, nil
}

func (a *appContext) close() {
	if err := a.store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: closing store: %v\n", err)
	}
}

// writeOutput writes content to path, or to stdout when path is empty.
func writeOutput(path, content string) error {
	if path == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}
