package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/myasir/portfolio-api/internal/api/handlers"
	"github.com/myasir/portfolio-api/internal/api/middleware"
	"github.com/myasir/portfolio-api/internal/config"
	"github.com/myasir/portfolio-api/internal/logging"
	"github.com/myasir/portfolio-api/internal/mailer"
	"github.com/myasir/portfolio-api/internal/metrics"
	"github.com/myasir/portfolio-api/internal/server/routes"
	"github.com/myasir/portfolio-api/internal/utils"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 15 * time.Second

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	logger *logging.Logger
	http   *http.Server
}

// NewServer creates a new server instance with every route registered
func NewServer(cfg *config.Config, logger *logging.Logger, dispatcher *mailer.Dispatcher, projects handlers.ProjectSource) *Server {
	if gin.Mode() != gin.TestMode {
		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		} else {
			gin.SetMode(gin.DebugMode)
		}
	}

	// Gin's own logger is replaced by middleware.RequestLogger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()
	router.HandleMethodNotAllowed = false

	if err := utils.ConfigureClientIP(router, cfg.TrustedProxies); err != nil {
		// Trust nobody on a malformed list
		logger.Error("Invalid trusted proxies %v: %v", cfg.TrustedProxies, err)
		utils.ConfigureClientIP(router, nil)
	}

	routes.SetupGlobalMiddleware(router, cfg, logger)

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(dispatcher),
		Health:  handlers.NewHealthHandler(dispatcher.BackendName(), cfg.Mail.OwnerName),
		Project: handlers.NewProjectHandler(projects),
	}
	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
		ContactRateLimit: middleware.RateLimitMiddleware(middleware.RateLimitConfig{
			PerMinute: cfg.RateLimitPerMinute,
			Burst:     cfg.RateLimitBurst,
			OnReject: func(c *gin.Context) {
				metrics.IncrementContactSubmission(metrics.OutcomeRateLimited)
			},
		}),
	}
	routes.Setup(router, h, m, cfg, logger)

	return &Server{
		router: router,
		cfg:    cfg,
		logger: logger,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			// Covers the outbound delivery of a contact submission
			WriteTimeout: cfg.Mail.Timeout + 10*time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured port and serves until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then drains
// in-flight requests before returning.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening on %s (env=%s)", ln.Addr(), s.cfg.Environment)
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("Server stopped")
	return nil
}
