package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Port            string
	RateLimitRPM    int
	ResultTTL       time.Duration
	HideDelay       time.Duration
	LoadingInterval time.Duration
	MaxValues       int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// Load loads configuration from environment variables with sane defaults.
// HideDelay is how long a result panel stays visible before auto-hiding
// (0 disables); LoadingInterval is the loading-dot cycle period.
func Load() Config {
	return Config{
		Port:            getenv("PORT", "8080"),
		RateLimitRPM:    getint("RATE_LIMIT_RPM", 120),
		ResultTTL:       getdur("RESULT_TTL", 5*time.Minute),
		HideDelay:       getdur("HIDE_DELAY", 0),
		LoadingInterval: getdur("LOADING_INTERVAL", 500*time.Millisecond),
		MaxValues:       getint("MAX_VALUES", 100),
	}
}
