package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"

	"fakejobs-worker/config"
	"fakejobs-worker/helpers"
	"fakejobs-worker/internal/scraper"
	"fakejobs-worker/logger"
	"fakejobs-worker/services/cache"
	"fakejobs-worker/services/publisher"
	"fakejobs-worker/services/storage"
	"fakejobs-worker/services/worker"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	workers := flag.Int("workers", 0, "number of pool workers (overrides WORKER_COUNT)")
	flag.Parse()

	// Load and validate configuration
	cfg := config.LoadConfig()
	if *workers != 0 {
		cfg.WorkerCount = *workers
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	helpers.SetTimeout(cfg.FetchTimeout)

	log.Info().
		Str("environment", cfg.Environment).
		Str("listing_url", cfg.ListingURL).
		Int("workers", cfg.WorkerCount).
		Msg("Starting scrape")

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize optional services
	var cacheSvc cache.CacheService
	if cfg.MemcacheAddr != "" {
		cacheSvc = cache.NewMemcacheService(cfg.MemcacheAddr)
		logger.Info("Connected to Memcache at %s", cfg.MemcacheAddr)
	}

	var pub publisher.Publisher
	if cfg.RedisAddr != "" {
		redisPublisher := publisher.NewRedisPublisher(
			ctx,
			cfg.RedisAddr,
			cfg.RedisDB,
			cfg.RedisStream,
			cfg.RedisStreamMaxLength,
		)
		defer redisPublisher.Close()
		pub = redisPublisher

		logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
			cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)
	}

	// Open the normalized sink
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	// Create the scraper and run one cycle
	s := scraper.New(scraper.Config{
		ListingURL:   cfg.ListingURL,
		Selectors:    scraper.DefaultSelectors(),
		ExtractDelay: cfg.ExtractDelay,
		CacheTTL:     cfg.CacheTTL,
	}, cacheSvc)

	w := worker.NewWorker(s, db, cfg.JSONPath, pub, helpers.NewLogger(cfg.ErrorLogPath), cfg.WorkerCount)

	results, err := w.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Scrape run failed")
	}

	log.Info().
		Int("records", len(results)).
		Dur("elapsed", time.Since(start)).
		Msg("Scrape finished")
}
