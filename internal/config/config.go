package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// App
	Env string // dev / staging / prod
	// HTTP
	HTTPAddr string
	// Auth / Security
	JWTSecret string
	TokenTTL  time.Duration
	// Infrastructure
	DBAddr    string
	DBDebug   bool
	RedisAddr string // optional; rate limiting is disabled without it

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration

	// Upload / body limits
	MaxUploadSize int64
	MaxJSONBody   int64

	CORSAllowedOrigins string
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":5000"),
	}

	// required values.
	// A missing JWT secret must never fall back to a guessable default:
	// refusing to start is the only safe behavior.
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required env var: JWT_SECRET")
	}

	cfg.DBAddr = os.Getenv("DB_ADDR")
	if cfg.DBAddr == "" {
		return nil, fmt.Errorf("missing required env var: DB_ADDR")
	}

	// optional with defaults
	ttl, err := getDuration("TOKEN_TTL", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.TokenTTL = ttl

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.DBDebug = getEnv("DB_DEBUG", "") == "true"
	cfg.CORSAllowedOrigins = getEnv("CORS_ALLOWED_ORIGINS", "*")

	mus, err := getInt64("MAX_UPLOAD_SIZE", 5<<20)
	if err != nil {
		return nil, err
	}
	cfg.MaxUploadSize = mus

	mjb, err := getInt64("MAX_JSON_BODY", 1<<20)
	if err != nil {
		return nil, err
	}
	cfg.MaxJSONBody = mjb

	rt, err := getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPReadTimeout = rt

	wt, err := getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPWriteTimeout = wt

	it, err := getDuration("HTTP_IDLE_TIMEOUT", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.HTTPIdleTimeout = it

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q: %w", key, v, err)
	}
	return d, nil
}

func getInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid value for %s: %q", key, v)
	}
	return n, nil
}
