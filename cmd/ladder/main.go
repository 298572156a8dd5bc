package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sardtok/kingsheep-ladder/internal/api/rest"
	"github.com/Sardtok/kingsheep-ladder/internal/cache"
	"github.com/Sardtok/kingsheep-ladder/internal/config"
	"github.com/Sardtok/kingsheep-ladder/internal/service"
	"github.com/Sardtok/kingsheep-ladder/internal/store"
	"github.com/Sardtok/kingsheep-ladder/internal/web"
)

const (
	serviceName    = "kingsheep-ladder"
	serviceVersion = "1.0.0"
)

func main() {
	configPath := flag.String("config", os.Getenv("LADDER_CONFIG"), "path to YAML config file (optional)")
	flag.Parse()

	log.Printf("Starting %s v%s - King Sheep Ladder", serviceName, serviceVersion)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The log file may not exist yet; requests fail with 503 until the game
	// server writes the first match.
	logStore := store.NewLogStore(cfg.Log.Path)
	if _, err := logStore.ModTime(); err != nil {
		log.Printf("⚠️  Statistics log %s not readable yet: %v", cfg.Log.Path, err)
	} else {
		log.Printf("✓ Statistics log found at %s", cfg.Log.Path)
	}

	// Optional ladder cache, keyed by the log's last-modified marker
	var ladderCache service.Cache
	if cfg.Cache.Enabled {
		redisCache, err := connectRedis(cfg.Cache.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		ladderCache = redisCache
		log.Println("✓ Connected to Redis")
	}

	ladder := service.NewLadderService(logStore, ladderCache, cfg.Cache.ParseTTL())

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse page templates: %v", err)
	}

	restServer := rest.NewServer(cfg.Server.Port, ladder, renderer)
	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := restServer.Start(); err != nil {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	log.Printf("✓ %s v%s started successfully", serviceName, serviceVersion)
	log.Printf("  Ladder: http://0.0.0.0:%s/", cfg.Server.Port)
	log.Printf("  API:    http://0.0.0.0:%s/api/v1/ladder", cfg.Server.Port)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Printf("Shutting down %s gracefully...", serviceName)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Printf("%s stopped", serviceName)
}

// connectRedis dials Redis with bounded retries, the cache being optional
// infrastructure that may come up after this service.
func connectRedis(redisURL string) (*cache.RedisCache, error) {
	const maxRetries = 5
	retryDelay := 2 * time.Second

	var redisCache *cache.RedisCache
	var err error
	for i := 0; i < maxRetries; i++ {
		redisCache, err = cache.NewRedisCache(redisURL)
		if err == nil {
			return redisCache, nil
		}
		if i < maxRetries-1 {
			log.Printf("Redis connection attempt %d/%d failed: %v (retrying in %v)", i+1, maxRetries, err, retryDelay)
			time.Sleep(retryDelay)
		}
	}
	return nil, err
}
