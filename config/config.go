package config

import (
	"net/url"
	"os"
	"strconv"
	"time"

	apperrors "stockwatch/pkg/errors"
)

// DefaultProductURL is the ASUS ROG Zephyrus G14 product page, checked when
// no URL is supplied on the command line or in the environment.
const DefaultProductURL = "https://www.bestbuy.ca/en-ca/product/14575597"

// Config represents the application configuration
type Config struct {
	// Notification configuration
	SlackWebhookURL string
	NotifyCooldown  time.Duration

	// Fetch configuration
	ProductURL   string
	FetchTimeout time.Duration

	// Optional memcache-backed notification cooldown
	MemcacheAddr string

	// Optional Redis availability event stream
	RedisAddr         string
	RedisDB           int
	RedisStream       string
	RedisStreamMaxLen int

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAXLEN", "500"))
	fetchTimeout, _ := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "10"))
	cooldown, _ := strconv.Atoi(getEnv("NOTIFY_COOLDOWN_SECONDS", "3600"))

	return &Config{
		SlackWebhookURL:   os.Getenv("SLACK_WEB_HOOK_URL"),
		NotifyCooldown:    time.Duration(cooldown) * time.Second,
		ProductURL:        getEnv("PRODUCT_URL", DefaultProductURL),
		FetchTimeout:      time.Duration(fetchTimeout) * time.Second,
		MemcacheAddr:      os.Getenv("MEMCACHE_ADDR"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisDB:           redisDB,
		RedisStream:       getEnv("REDIS_STREAM", "availability"),
		RedisStreamMaxLen: streamMaxLen,
		Environment:       getEnv("STOCKWATCH_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for obvious misconfiguration
func (c *Config) Validate() error {
	if _, err := url.ParseRequestURI(c.ProductURL); err != nil {
		return apperrors.NewConfiguration("invalid product URL: "+c.ProductURL, err)
	}
	if c.SlackWebhookURL != "" {
		if _, err := url.ParseRequestURI(c.SlackWebhookURL); err != nil {
			return apperrors.NewConfiguration("invalid webhook URL", err)
		}
	}
	if c.FetchTimeout <= 0 {
		return apperrors.NewConfiguration("fetch timeout must be positive", nil)
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
