package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	root "linkrouter"
	"linkrouter/pkg/logger"
)

// migrateCommand constructs the 'migrate' subcommand that applies the schema
// migrations and the River queue migrations.
func migrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "migrate",
		Short:   "Migrates database to the latest version",
		PreRunE: a.loadConfig,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := a.cfg
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			version, err := strg.Migrate(ctx, root.Migrations, "migrations")
			if err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}

			logger.Info(ctx, "database migrated", zap.Int("riverVersion", version))
		},
	}

	return cmd
}
