package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skvindia/app-portal/internal/config"
	"github.com/skvindia/app-portal/internal/logger"
	"github.com/skvindia/app-portal/internal/repository/postgres"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations",
		Long: `Creates the users and permissions tables when they do not exist.
Production databases are usually provisioned externally; this is meant for
development and test environments.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewMigrateConfig()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel, cfg.LogFormat)

			db, err := postgres.NewConnection(cmd.Context(), cfg.Database.DSN, true)
			if err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			defer db.Close()

			log.Info("Migrate: schema is up to date")
			return nil
		},
	}
}
