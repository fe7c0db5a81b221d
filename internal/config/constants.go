package config

import "time"

const (
	envBaseURL         = "DUGOUT_BASE_URL"
	envHTTPTimeout     = "DUGOUT_HTTP_TIMEOUT"
	envTeam            = "DUGOUT_TEAM"
	envRefreshEnabled  = "DUGOUT_REFRESH_ENABLED"
	envRefreshInterval = "DUGOUT_REFRESH_INTERVAL"
	envExportDir       = "DUGOUT_EXPORT_DIR"

	envPort        = "PORT"
	envServerUsers = "GAMESERVER_USERS"
	envServerSeed  = "GAMESERVER_SEED"
	envServerTeam  = "GAMESERVER_TEAM"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultBaseURL         = "http://localhost:5000"
	defaultHTTPTimeout     = 10 * time.Second
	defaultTeam            = "Bakers"
	defaultRefreshEnabled  = false
	defaultRefreshInterval = time.Minute
	defaultExportDir       = "data/exports"

	defaultPort        = "5000"
	defaultServerUsers = "manager:baseball"
	defaultServerSeed  = 1

	defaultMetricsPort = "9090"
)
