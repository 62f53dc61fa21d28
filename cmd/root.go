package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"studiobooks/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "studiobooks",
	Short: "StudioBooks - business records for photographers",
	Long: `StudioBooks keeps a photography business's records on the local device:
shoot bookings, client invoices, advance and balance payments, expenses,
reminder notifications, and printable invoices and monthly reports.

All state lives in a local database; there is no server and no account.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("StudioBooks - business records for photographers")
		fmt.Println("Use --help to see available commands.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
