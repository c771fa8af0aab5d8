package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-comeback/internal/db"
	"github.com/jonathan/career-comeback/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	var (
		databaseURL string
		printOnly   bool
	)
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Long:  "Create any missing tables and indexes. Safe to run repeatedly.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if printOnly {
				_, err := fmt.Fprint(cmd.OutOrStdout(), db.Schema())
				return err
			}

			if databaseURL == "" {
				databaseURL = os.Getenv("DATABASE_URL")
			}
			if databaseURL == "" {
				return fmt.Errorf("database URL is required (set DATABASE_URL or use --db-url)")
			}

			database, err := db.Connect(cmd.Context(), databaseURL)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close()

			if err := database.Migrate(cmd.Context()); err != nil {
				return err
			}
			logger.Named("migrate").Info().Msg("schema applied")
			return nil
		},
	}
	cmd.Flags().StringVar(&databaseURL, "db-url", "", "Database URL (overrides DATABASE_URL)")
	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the schema instead of applying it")
	return cmd
}
