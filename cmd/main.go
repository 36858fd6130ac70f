// Package main provides the CLI entrypoint for the link router service.
// It wires subcommands (serve, migrate, jwt, classify), loads configuration, and initializes logging.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"linkrouter/internal/config"
	"linkrouter/pkg/logger"
	"linkrouter/pkg/storage/postgres"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
		ApplicationName:    "linkrouter",
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// app carries state shared by the subcommands. cfg is loaded by loadConfig
// before any command that needs it runs.
type app struct {
	configPath string
	cfg        *config.Config
}

// loadConfig reads the config file and sets up logging. Commands working on
// the database or keys use it as their PreRunE.
func (a *app) loadConfig(*cobra.Command, []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err //nolint: wrapcheck
	}

	logger.Setup(cfg.Environment)
	a.cfg = cfg

	return nil
}

// main sets up the root Cobra command and registers the subcommands before
// executing the CLI.
func main() {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:          "linkrouter",
		Short:        "Classifies Wykop links and records where they lead",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path")

	// commands that never load the config still log through the default logger
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(a),
		serveCommand(a),
		JWTCommand(a),
		classifyCommand(),
	)

	err := rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
