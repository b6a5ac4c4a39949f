package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/myasir/portfolio-api/internal/config"
	"github.com/myasir/portfolio-api/internal/config/env"
	"github.com/myasir/portfolio-api/internal/logging"
	"github.com/myasir/portfolio-api/internal/mailer"
)

// app holds the process-wide dependencies shared by every subcommand.
type app struct {
	cfg        *config.Config
	logger     *logging.Logger
	dispatcher *mailer.Dispatcher
}

// bootstrap loads .env files and configuration, sets up logging and builds
// the delivery pipeline. Missing delivery credentials are reported as
// warnings and leave an Unavailable backend in place.
func bootstrap(ctx context.Context) (*app, error) {
	envFile := env.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if err := cfg.EnsureLogDir(); err != nil {
		return nil, err
	}
	logConfig := logging.DefaultConfig(cfg.LogLevel, cfg.LogFile)
	logConfig.Requests = cfg.LogRequests
	if err := logging.Configure(logConfig); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	logger := logging.GetLogger()

	if envFile != "" {
		logger.Debug("Loaded environment from %s", envFile)
	}
	for _, w := range cfg.Warnings() {
		logger.Warn("WARNING: %s", w)
	}

	backend, err := mailer.NewBackend(ctx, cfg.Mail)
	if err != nil {
		if !errors.Is(err, mailer.ErrNotConfigured) {
			return nil, err
		}
		logger.Warn("Email backend %q is not configured, every submission will fail: %v", cfg.Mail.Backend, err)
		backend = mailer.NewUnavailable(cfg.Mail.Backend, err)
	}

	dispatcher := mailer.NewDispatcher(backend, mailer.NewDispatcherConfig(cfg.Mail), logger)

	return &app{
		cfg:        cfg,
		logger:     logger,
		dispatcher: dispatcher,
	}, nil
}
