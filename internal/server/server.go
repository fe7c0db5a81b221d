// Package server runs the development game server: league, handlers,
// middleware, optional metrics endpoint and graceful shutdown.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/dugout/internal/config"
	httpserver "github.com/preston-bernstein/dugout/internal/http"
	"github.com/preston-bernstein/dugout/internal/http/handlers"
	"github.com/preston-bernstein/dugout/internal/http/middleware"
	"github.com/preston-bernstein/dugout/internal/league"
	"github.com/preston-bernstein/dugout/internal/logging"
	"github.com/preston-bernstein/dugout/internal/metrics"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.ServerConfig
	logger        *slog.Logger
	metrics       *metrics.Recorder
	league        *league.League
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a game server from configuration.
func New(cfg config.ServerConfig, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.ServerConfig, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	lg := league.New(league.Config{Team: cfg.Team, Seed: cfg.Seed})
	httpSrv := buildHTTPServer(cfg, lg, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		league:        lg,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.ServerConfig, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

// NewHandler builds the full middleware-wrapped handler without a listener.
// End-to-end tests mount it on httptest servers.
func NewHandler(cfg config.ServerConfig, logger *slog.Logger, recorder *metrics.Recorder) http.Handler {
	lg := league.New(league.Config{Team: cfg.Team, Seed: cfg.Seed})
	return buildHandler(cfg, lg, logger, recorder)
}

func buildHandler(cfg config.ServerConfig, lg *league.League, logger *slog.Logger, recorder *metrics.Recorder) http.Handler {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	h := handlers.NewHandler(lg, handlers.NewSessions(), cfg.Users, logger)
	return middleware.LoggingMiddleware(logger, recorder, httpserver.NewRouter(h))
}

func buildHTTPServer(cfg config.ServerConfig, lg *league.League, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           buildHandler(cfg, lg, logger, recorder),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// Run starts the HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.ServerConfig, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
