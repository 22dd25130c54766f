package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Roster workbooks. When RosterURL is set workbooks are fetched over HTTP
	// instead of read from DataDir.
	DataDir      string
	RosterURL    string
	FetchTimeout time.Duration

	// University registry YAML. Empty uses the built-in registry.
	RegistryPath string

	// Table cache. Empty RedisURL disables caching.
	RedisURL string
	CacheTTL time.Duration

	// Charts
	ImageDir string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		DataDir:      getEnv("DATA_DIR", "data"),
		RosterURL:    getEnv("ROSTER_URL", ""),
		FetchTimeout: getEnvDuration("FETCH_TIMEOUT", 15*time.Second),

		RegistryPath: getEnv("REGISTRY_PATH", ""),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: getEnvDuration("CACHE_TTL", 10*time.Minute),
	}
	cfg.ImageDir = getEnv("IMAGE_DIR", cfg.DataDir+"/images")

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	if cfg.RosterURL != "" && !strings.Contains(cfg.RosterURL, "{university}") {
		return nil, fmt.Errorf("ROSTER_URL must contain a {university} placeholder: %s", cfg.RosterURL)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d", cfg.Port)
	}

	return cfg, nil
}

// IsProduction reports whether ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
