package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hwright/contactform/internal/config"
	"github.com/hwright/contactform/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server and the dispatch worker",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.New()
		if err != nil {
			slog.Error("Invalid configuration", "error", err)
			os.Exit(1)
		}

		s, err := server.New(context.Background(), cfg)
		if err != nil {
			slog.Error("Failed to initialize server", "error", err)
			os.Exit(1)
		}

		s.RegisterRoutes()

		if err := s.Start(); err != nil {
			slog.Error("Server exited with error", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
