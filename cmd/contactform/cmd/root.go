package cmd

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hwright/contactform/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "contactform",
	Short: "Contact-form service",
	Long: `contactform accepts contact-form submissions over HTTP, stores them,
and dispatches a notification email asynchronously.

Available commands:
  serve     Run the HTTP server and the dispatch worker
  migrate   Apply the database schema

Use "contactform [command] --help" for more information about a specific command.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load environment variables from .env file if it exists.
		if err := godotenv.Load(); err != nil {
			// slog is not configured yet, so the standard logger is used here.
			log.Println("No .env file found, relying on environment variables")
		}
		logging.New()
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
