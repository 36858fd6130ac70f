package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"linkrouter/internal/api"
	"linkrouter/internal/api/handler/v1handler"
	"linkrouter/internal/config"
	"linkrouter/internal/router"
	"linkrouter/internal/worker"
	"linkrouter/pkg/logger"
	"linkrouter/pkg/metrics"
	"linkrouter/pkg/preview/htmlmeta"
	"linkrouter/pkg/storage"
	"linkrouter/pkg/storage/postgres"
)

func setupRouter(ctx context.Context, cfg *config.Config, strg storage.Storage) router.Router {
	mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	otel.SetMeterProvider(mp)

	httpClient := htmlmeta.NewHTTPClient(htmlmeta.HTTPClientOptions{
		Timeout:               cfg.Preview.Timeout,
		MaxRedirects:          cfg.Preview.MaxRedirects,
		AllowPrivateAddresses: cfg.Preview.AllowPrivateAddresses,
	})
	if cfg.Preview.AllowPrivateAddresses {
		logger.Warn(ctx, "preview fetches may reach private addresses")
	}
	client := htmlmeta.New(httpClient, htmlmeta.Options{
		UserAgent:         cfg.Preview.UserAgent,
		MaxBodyBytes:      cfg.Preview.MaxBodyBytes,
		RequestsPerSecond: cfg.Preview.RequestsPerSecond,
		Burst:             cfg.Preview.Burst,
	})

	opts := router.NewOptions(cfg)
	opts.MeterProvider = mp
	opts.TracerProvider = otel.GetTracerProvider()
	r, err := router.New(strg, client, opts)
	if err != nil {
		logger.Fatal(ctx, "could not create router", zap.Error(err))
	}

	return r
}

func setupServer(ctx context.Context, cfg *config.Config, r router.Router,
	riverClient *river.Client[pgx.Tx],
) func(ctx context.Context) {
	server, err := api.NewServer(ctx, api.Deps{
		Deps:        v1handler.Deps{Router: r},
		RiverClient: riverClient,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL,
	r router.Router,
) (*river.Client[pgx.Tx], func(ctx context.Context)) {
	riverClient, err := worker.Start(ctx, pgsql.Pool, r, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return riverClient, func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func serveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Starts API server and background workers",
		PreRunE: a.loadConfig,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := a.cfg
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			r := setupRouter(ctx, cfg, pgsql)

			// workers outlive the signal context so in-flight jobs can finish during shutdown
			riverClient, stopWorkers := setupWorkers(context.WithoutCancel(ctx), cfg, pgsql, r)
			stopWebserver := setupServer(ctx, cfg, r, riverClient)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	return cmd
}
