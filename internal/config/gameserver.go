package config

// ServerConfig controls the local development game server.
type ServerConfig struct {
	Port    string
	Users   map[string]string
	Seed    int64
	Team    string
	Metrics MetricsConfig
}

// LoadServer reads game server configuration from the environment.
func LoadServer() ServerConfig {
	return ServerConfig{
		Port:    envOrDefault(envPort, defaultPort),
		Users:   credentialsEnvOrDefault(envServerUsers, defaultServerUsers),
		Seed:    int64EnvOrDefault(envServerSeed, defaultServerSeed),
		Team:    envOrDefault(envServerTeam, defaultTeam),
		Metrics: loadMetrics("dugout-gameserver", true),
	}
}
