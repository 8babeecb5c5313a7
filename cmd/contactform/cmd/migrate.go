package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hwright/contactform/internal/config"
	"github.com/hwright/contactform/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the contactform database schema",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.New()
		if err != nil {
			slog.Error("Invalid configuration", "error", err)
			os.Exit(1)
		}

		ctx := context.Background()
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := repository.Migrate(ctx, pool); err != nil {
			slog.Error("Migration failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Migration applied")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
