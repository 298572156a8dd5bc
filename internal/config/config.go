package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Cache  CacheConfig  `yaml:"cache"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// LogConfig points at the statistics log written by the game server.
type LogConfig struct {
	Path string `yaml:"path"`
}

// CacheConfig controls the optional Redis-backed ladder cache.
type CacheConfig struct {
	Enabled  bool   `yaml:"enabled"`
	RedisURL string `yaml:"redis_url"`
	TTL      string `yaml:"ttl"` // Go duration string, e.g. "30s"
}

const defaultCacheTTL = 30 * time.Second

// Load reads configuration from an optional YAML file, then applies
// environment variable overrides. An empty path loads defaults only.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{Port: "8080"},
		Log:    LogConfig{Path: "stats.csv"},
		Cache: CacheConfig{
			Enabled:  false,
			RedisURL: "redis://localhost:6379",
			TTL:      defaultCacheTTL.String(),
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Server.Port = getEnv("REST_PORT", cfg.Server.Port)
	cfg.Log.Path = getEnv("STATS_LOG", cfg.Log.Path)
	cfg.Cache.RedisURL = getEnv("REDIS_URL", cfg.Cache.RedisURL)
	cfg.Cache.TTL = getEnv("CACHE_TTL", cfg.Cache.TTL)
	if v := os.Getenv("CACHE_ENABLED"); v != "" {
		cfg.Cache.Enabled = v == "true"
	}

	return cfg, nil
}

// ParseTTL returns the cache TTL, falling back to the default on a bad or
// empty duration string.
func (c CacheConfig) ParseTTL() time.Duration {
	ttl, err := time.ParseDuration(c.TTL)
	if err != nil || ttl <= 0 {
		return defaultCacheTTL
	}
	return ttl
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
