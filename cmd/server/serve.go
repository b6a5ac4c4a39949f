package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/myasir/portfolio-api/internal/portfolio"
	"github.com/myasir/portfolio-api/internal/server"
	"github.com/myasir/portfolio-api/internal/server/routes"
	"github.com/myasir/portfolio-api/internal/telemetry"
	"github.com/myasir/portfolio-api/internal/version"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server. The server shuts down gracefully on SIGINT or
SIGTERM, letting in-flight requests finish.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.logger.Close()

	a.logger.Info("Starting portfolio API %s in %s mode", version.GetVersionString(), a.cfg.Environment)
	a.logger.Info("Email backend: %s", a.dispatcher.BackendName())

	shutdownTracing, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    routes.ServiceName,
		ServiceVersion: version.Version,
		Endpoint:       a.cfg.OTLPEndpoint,
	}, a.logger)
	if err != nil {
		a.logger.Error("Failed to initialize tracing: %v", err)
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			a.logger.Error("Failed to shut down tracing: %v", err)
		}
	}()

	srv := server.NewServer(a.cfg, a.logger, a.dispatcher, portfolio.NewCatalog())
	if err := srv.Start(ctx); err != nil {
		a.logger.Error("Server error: %v", err)
		return err
	}
	return nil
}
