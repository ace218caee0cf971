package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/stablescan/walletstat/internal/domain"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	ChainDataURL    string
	ChainDataAPIKey string
	Networks        []domain.Network
	RequestTimeout  time.Duration
	RequestDelay    time.Duration
	WatchInterval   time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		ChainDataURL:    envOrDefault("CHAINDATA_URL", "https://api.covalenthq.com"),
		ChainDataAPIKey: envOrDefaultWarn("CHAINDATA_API_KEY", ""),
		Networks:        envNetworks("CHAINDATA_NETWORKS"),
		RequestTimeout:  envOrDefaultDuration("REQUEST_TIMEOUT", 30*time.Second),
		RequestDelay:    envOrDefaultDuration("REQUEST_DELAY", 500*time.Millisecond),
		WatchInterval:   envOrDefaultDuration("WATCH_INTERVAL", 15*time.Minute),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultWarn(key, defaultVal string) string {
	v := envOrDefault(key, defaultVal)
	if v == "" {
		slog.Warn("required env var not set", "key", key)
	}
	return v
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}

// envNetworks parses a comma-separated network list, falling back to the
// built-in network set when unset or empty.
func envNetworks(key string) []domain.Network {
	v := os.Getenv(key)
	if v == "" {
		return domain.DefaultNetworks()
	}

	var networks []domain.Network
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			networks = append(networks, domain.Network(part))
		}
	}
	if len(networks) == 0 {
		slog.Warn("network list env var has no usable entries, using defaults", "key", key, "value", v)
		return domain.DefaultNetworks()
	}
	return networks
}
