package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Sardtok/kingsheep-ladder/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Log.Path != "stats.csv" {
		t.Errorf("expected default log path stats.csv, got %q", cfg.Log.Path)
	}
	if cfg.Cache.Enabled {
		t.Error("cache must be disabled by default")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ladder.yaml")
	content := `
server:
  port: "9090"
log:
  path: /var/lib/kingsheep/stats.csv
cache:
  enabled: true
  redis_url: redis://cache:6379
  ttl: 1m
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Log.Path != "/var/lib/kingsheep/stats.csv" {
		t.Errorf("unexpected log path %q", cfg.Log.Path)
	}
	if !cfg.Cache.Enabled || cfg.Cache.RedisURL != "redis://cache:6379" {
		t.Errorf("unexpected cache config %+v", cfg.Cache)
	}
	if got := cfg.Cache.ParseTTL(); got != time.Minute {
		t.Errorf("expected TTL 1m, got %v", got)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ladder.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	t.Setenv("REST_PORT", "7070")
	t.Setenv("STATS_LOG", "/tmp/other.csv")
	t.Setenv("CACHE_ENABLED", "true")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("environment must override the file, got port %q", cfg.Server.Port)
	}
	if cfg.Log.Path != "/tmp/other.csv" {
		t.Errorf("unexpected log path %q", cfg.Log.Path)
	}
	if !cfg.Cache.Enabled {
		t.Error("expected cache enabled via environment")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestParseTTL_Fallback(t *testing.T) {
	c := config.CacheConfig{TTL: "not-a-duration"}
	if got := c.ParseTTL(); got != 30*time.Second {
		t.Errorf("expected the 30s default, got %v", got)
	}
}
