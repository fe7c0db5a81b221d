package metrics

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledInitializesRecorderAndHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "dugout-test",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil || handler == nil || shutdown == nil {
		t.Fatalf("expected recorder, handler and shutdown")
	}
	defer func() { _ = shutdown(context.Background()) }()

	rec.RecordHTTPRequest("GET", "/api/game_state", 200, time.Millisecond)
	rec.RecordRefreshCycle(time.Millisecond, nil)
	rec.RecordRefreshCycle(time.Millisecond, errors.New("boom"))
	rec.RecordCall("/api/order", time.Millisecond, errors.New("boom"))
	rec.RecordAuthLost("/api/order")

	if rec.Calls("/api/order") != 1 || rec.AuthLost("/api/order") != 1 {
		t.Fatalf("expected in-memory stats alongside otel instruments")
	}
}

func TestSetupPropagatesPrometheusFactoryError(t *testing.T) {
	orig := promReaderFactory
	defer func() { promReaderFactory = orig }()
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry failure")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected setup error")
	}
}
