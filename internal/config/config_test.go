package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.BaseURL != defaultBaseURL {
		t.Fatalf("expected default base url %s, got %s", defaultBaseURL, cfg.BaseURL)
	}
	if cfg.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultHTTPTimeout, cfg.HTTPTimeout)
	}
	if cfg.Team != defaultTeam {
		t.Fatalf("expected default team %s, got %s", defaultTeam, cfg.Team)
	}
	if cfg.RefreshEnabled {
		t.Fatalf("expected refresh disabled by default")
	}
	if cfg.RefreshInterval != defaultRefreshInterval {
		t.Fatalf("expected default refresh interval %s, got %s", defaultRefreshInterval, cfg.RefreshInterval)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected client metrics disabled by default")
	}
	if cfg.Metrics.ServiceName != "dugout" {
		t.Fatalf("expected service name dugout, got %s", cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envBaseURL, "http://example.com:8080")
	t.Setenv(envHTTPTimeout, "3s")
	t.Setenv(envTeam, "Owls")
	t.Setenv(envRefreshEnabled, "yes")
	t.Setenv(envRefreshInterval, "45s")
	t.Setenv(envExportDir, "/tmp/out")
	t.Setenv(envMetricsOn, "true")

	cfg := Load()

	if cfg.BaseURL != "http://example.com:8080" {
		t.Fatalf("expected base url override, got %s", cfg.BaseURL)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("expected timeout 3s, got %s", cfg.HTTPTimeout)
	}
	if cfg.Team != "Owls" {
		t.Fatalf("expected team override, got %s", cfg.Team)
	}
	if !cfg.RefreshEnabled || cfg.RefreshInterval != 45*time.Second {
		t.Fatalf("expected refresh overrides, got %v %s", cfg.RefreshEnabled, cfg.RefreshInterval)
	}
	if cfg.ExportDir != "/tmp/out" {
		t.Fatalf("expected export dir override, got %s", cfg.ExportDir)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("expected metrics enabled override")
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envHTTPTimeout, "not-a-duration")
	t.Setenv(envRefreshInterval, "0s")

	cfg := Load()

	if cfg.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.HTTPTimeout)
	}
	if cfg.RefreshInterval != defaultRefreshInterval {
		t.Fatalf("expected default refresh interval on non-positive value, got %s", cfg.RefreshInterval)
	}
}

func TestLoadServerDefaultsAndOverrides(t *testing.T) {
	cfg := LoadServer()
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Users["manager"] != "baseball" {
		t.Fatalf("expected default manager credentials, got %+v", cfg.Users)
	}
	if cfg.Seed != defaultServerSeed {
		t.Fatalf("expected default seed, got %d", cfg.Seed)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("expected server metrics enabled by default")
	}

	t.Setenv(envPort, "6000")
	t.Setenv(envServerUsers, "a:1, b:2,broken,:x")
	t.Setenv(envServerSeed, "42")
	t.Setenv(envServerTeam, "Owls")

	cfg = LoadServer()
	if cfg.Port != "6000" || cfg.Seed != 42 || cfg.Team != "Owls" {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
	if len(cfg.Users) != 2 || cfg.Users["a"] != "1" || cfg.Users["b"] != "2" {
		t.Fatalf("expected two parsed users, got %+v", cfg.Users)
	}
}
