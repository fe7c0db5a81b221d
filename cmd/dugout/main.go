package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/preston-bernstein/dugout/internal/api"
	"github.com/preston-bernstein/dugout/internal/appstate"
	"github.com/preston-bernstein/dugout/internal/config"
	"github.com/preston-bernstein/dugout/internal/console"
	"github.com/preston-bernstein/dugout/internal/export"
	"github.com/preston-bernstein/dugout/internal/gateway"
	"github.com/preston-bernstein/dugout/internal/logging"
	"github.com/preston-bernstein/dugout/internal/metrics"
	"github.com/preston-bernstein/dugout/internal/refresher"
	"github.com/preston-bernstein/dugout/internal/session"
	"github.com/preston-bernstein/dugout/internal/store"
	"github.com/preston-bernstein/dugout/internal/view"
)

const (
	appVersion      = "dev"
	shutdownTimeout = 5 * time.Second
)

func main() {
	if os.Getenv("SKIP_CLIENT_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "dugout",
		Version: appVersion,
		Output:  os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Stdin, os.Stdout); err != nil {
		logging.Error(logger, "dugout exited with error", err)
		os.Exit(1)
	}
}

// run wires the client stack and drives the console until input ends.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger, in io.Reader, out io.Writer) error {
	recorder, shutdownMetrics := setupMetrics(ctx, cfg.Metrics, logger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownMetrics(shutdownCtx)
	}()

	state := appstate.New()
	gw := gateway.New(gateway.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.HTTPTimeout,
		State:   state,
		Logger:  logger,
		Metrics: recorder,
	})
	client := api.NewClient(gw)
	renderer := console.NewRenderer(out, cfg.Team)
	ctrl := session.New(session.Config{
		API:      client,
		Store:    store.New(client, logger),
		Renderer: renderer,
		State:    state,
		Team:     cfg.Team,
		Logger:   logger,
	})
	gw.SetAuthLostHandler(ctrl.HandleAuthLost)

	var exporter console.Exporter
	if cfg.ExportDir != "" {
		exporter = export.NewWriter(cfg.ExportDir, 0)
	}
	cons := console.New(ctrl, exporter, out, logger)

	if cfg.RefreshEnabled {
		r := refresher.New(ctrl, logger, recorder, cfg.RefreshInterval)
		r.Start(ctx)
		cons.SetRefreshMonitor(r)
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = r.Stop(stopCtx)
		}()
	}

	logging.Info(logger, "dugout starting", "base_url", gw.BaseURL())
	if err := ctrl.Start(ctx, view.SectionHome); err != nil && !errors.Is(err, session.ErrBusy) {
		logging.Warn(logger, "initial session check failed", err)
	}
	return cons.Run(ctx, in)
}

func setupMetrics(ctx context.Context, cfg config.MetricsConfig, logger *slog.Logger) (*metrics.Recorder, func(context.Context)) {
	rec, handler, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Enabled,
		Port:         cfg.Port,
		ServiceName:  cfg.ServiceName,
		OtlpEndpoint: cfg.OtlpEndpoint,
		OtlpInsecure: cfg.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", err)
		return metrics.NewRecorder(), func(context.Context) {}
	}

	var srv *http.Server
	if handler != nil {
		srv = &http.Server{Addr: ":" + cfg.Port, Handler: handler}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Warn(logger, "metrics server failed", err)
			}
		}()
	}

	return rec, func(ctx context.Context) {
		if srv != nil {
			_ = srv.Shutdown(ctx)
		}
		if shutdown != nil {
			if err := shutdown(ctx); err != nil {
				logging.Warn(logger, "metrics shutdown failed", err)
			}
		}
	}
}
