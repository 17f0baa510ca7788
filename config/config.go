package config

import (
	"os"
	"strconv"
	"time"

	"fakejobs-worker/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Scraper configuration
	ListingURL   string
	WorkerCount  int
	FetchTimeout time.Duration
	ExtractDelay time.Duration

	// Output configuration
	JSONPath     string
	DBPath       string
	ErrorLogPath string

	// Memcache configuration (optional detail-page cache)
	MemcacheAddr string
	CacheTTL     time.Duration

	// Redis configuration (optional record publisher)
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamMaxLength int

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	workerCount, _ := strconv.Atoi(getEnv("WORKER_COUNT", "5"))
	fetchTimeout, _ := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "10"))
	extractDelay, _ := strconv.Atoi(getEnv("EXTRACT_DELAY_MS", "100"))
	cacheTTL, _ := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "300"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	redisStreamMaxLength, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))

	return Config{
		ListingURL:           getEnv("LISTING_URL", "https://realpython.github.io/fake-jobs/"),
		WorkerCount:          workerCount,
		FetchTimeout:         time.Duration(fetchTimeout) * time.Second,
		ExtractDelay:         time.Duration(extractDelay) * time.Millisecond,
		JSONPath:             getEnv("JSON_PATH", "scrap/fake-jobs.json"),
		DBPath:               getEnv("DB_PATH", "scrap/fake-jobs.db"),
		ErrorLogPath:         getEnv("ERROR_LOG_PATH", "scrap/errors.log"),
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", ""),
		CacheTTL:             time.Duration(cacheTTL) * time.Second,
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "fakejobs"),
		RedisStreamMaxLength: redisStreamMaxLength,
		Environment:          getEnv("SCRAPER_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.WorkerCount <= 0 {
		return errors.NewConfiguration("worker count must be a positive integer", nil)
	}
	if c.ListingURL == "" {
		return errors.NewConfiguration("listing URL must not be empty", nil)
	}
	if c.JSONPath == "" || c.DBPath == "" {
		return errors.NewConfiguration("output paths must not be empty", nil)
	}
	if c.FetchTimeout <= 0 {
		return errors.NewConfiguration("fetch timeout must be positive", nil)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
