package config

import "time"

// Config holds runtime configuration for the dugout client.
type Config struct {
	BaseURL         string
	HTTPTimeout     time.Duration
	Team            string
	RefreshEnabled  bool
	RefreshInterval time.Duration
	ExportDir       string
	Metrics         MetricsConfig
}

// Load reads client configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		BaseURL:         envOrDefault(envBaseURL, defaultBaseURL),
		HTTPTimeout:     durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		Team:            envOrDefault(envTeam, defaultTeam),
		RefreshEnabled:  boolEnvOrDefault(envRefreshEnabled, defaultRefreshEnabled),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		ExportDir:       envOrDefault(envExportDir, defaultExportDir),
		Metrics:         loadMetrics("dugout", false),
	}
}
