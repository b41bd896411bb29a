package config

import (
	"os"
	"strconv"
	"time"
)

// RateLimitConfig controls the Redis fixed-window request limiter.  When
// Enabled is false or no Redis client is available the middleware is a
// pass-through.
type RateLimitConfig struct {
	Enabled bool          // master switch
	Limite  int           // requests allowed per window
	Janela  time.Duration // window length
	Prefixo string        // key namespace in Redis
}

// LoadRateLimitConfig reads RATE_LIMIT_* environment variables, falling back
// to 60 requests per minute.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: envBool("RATE_LIMIT_ENABLED", true),
		Limite:  envInt("RATE_LIMIT_MAX", 60),
		Janela:  envDur("RATE_LIMIT_WINDOW", time.Minute),
		Prefixo: getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limite < 1 {
		cfg.Limite = 1
	}
	if cfg.Janela <= 0 {
		cfg.Janela = time.Minute
	}
	return cfg
}

func envBool(k string, d bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if dur, err := time.ParseDuration(v); err == nil {
			return dur
		}
	}
	return d
}
