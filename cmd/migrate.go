package main

import (
	"context"
	root "uuid62"
	"uuid62/internal/config"
	"uuid62/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			if cfg.Storage.Driver != config.StorageDriverPostgres {
				logger.Warn(ctx, "storage driver is not postgres, migrating the configured database anyway",
					zap.String("driver", cfg.Storage.Driver))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			results, err := strg.Migrate(ctx, root.Migrations)
			for _, r := range results {
				logger.Info(ctx, "applied migration",
					zap.String("source", r.Source.Path),
					zap.Duration("duration", r.Duration))
			}
			if err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			if len(results) == 0 {
				logger.Info(ctx, "database is up to date")
			}
		},
	}

	return cmd
}
