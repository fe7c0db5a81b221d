package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func envOrDefault(key, defaultValue string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultValue
}

// durationEnvOrDefault rejects unparsable and non-positive values.
func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func int64EnvOrDefault(key string, defaultValue int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return defaultValue
	}
	return val
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	switch {
	case raw == "":
		return defaultValue
	case raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes"):
		return true
	case raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no"):
		return false
	default:
		return defaultValue
	}
}

// credentialsEnvOrDefault parses "user:pass,user2:pass2" pairs, skipping malformed entries.
func credentialsEnvOrDefault(key, defaultValue string) map[string]string {
	raw := envOrDefault(key, defaultValue)
	out := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		user, pass, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || user == "" || pass == "" {
			continue
		}
		out[user] = pass
	}
	return out
}
