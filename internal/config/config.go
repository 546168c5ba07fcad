// Package config loads service settings from the environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	CacheRedis   = "redis"
	CacheLRU     = "lru"
	CacheSturdyc = "sturdyc"
)

type Config struct {
	ServerAddress    string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	ShutdownTimeout  time.Duration

	PostgresConn     string
	PostgresDriver   string
	PostgresDatabase string
	PostgresMaxConns int

	CacheBackend  string
	CacheTTL      time.Duration
	CacheCapacity int
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LogLevel log.Lvl
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(".env: %w", err)
	}

	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{}
	var err error

	cfg.ServerAddress = getEnvDefault("SERVER_ADDRESS", ":3000")

	if cfg.HTTPReadTimeout, err = getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second); err != nil {
		return nil, fmt.Errorf("HTTP_READ_TIMEOUT: %w", err)
	}
	if cfg.HTTPWriteTimeout, err = getEnvDuration("HTTP_WRITE_TIMEOUT", 60*time.Second); err != nil {
		return nil, fmt.Errorf("HTTP_WRITE_TIMEOUT: %w", err)
	}
	if cfg.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second); err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg.PostgresConn = os.Getenv("POSTGRES_CONN")
	if cfg.PostgresConn == "" {
		return nil, errors.New("POSTGRES_CONN: required environment variable is not set")
	}
	cfg.PostgresDriver = getEnvDefault("POSTGRES_DRIVER", "postgres")
	if cfg.PostgresDriver != "postgres" && cfg.PostgresDriver != "pgx" {
		return nil, fmt.Errorf("POSTGRES_DRIVER: unsupported driver %q, expected postgres or pgx", cfg.PostgresDriver)
	}
	cfg.PostgresDatabase = getEnvDefault("POSTGRES_DATABASE", "reciclame")
	if cfg.PostgresMaxConns, err = getEnvInt("POSTGRES_MAX_CONNS", 10); err != nil {
		return nil, fmt.Errorf("POSTGRES_MAX_CONNS: %w", err)
	}

	cfg.CacheBackend = strings.ToLower(getEnvDefault("CACHE_BACKEND", CacheRedis))
	switch cfg.CacheBackend {
	case CacheRedis, CacheLRU, CacheSturdyc:
	default:
		return nil, fmt.Errorf("CACHE_BACKEND: unsupported backend %q, expected redis, lru or sturdyc", cfg.CacheBackend)
	}
	if cfg.CacheTTL, err = getEnvDuration("CACHE_TTL", 5*time.Minute); err != nil {
		return nil, fmt.Errorf("CACHE_TTL: %w", err)
	}
	if cfg.CacheCapacity, err = getEnvInt("CACHE_CAPACITY", 10000); err != nil {
		return nil, fmt.Errorf("CACHE_CAPACITY: %w", err)
	}
	cfg.RedisAddr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}

	if cfg.LogLevel, err = parseLogLevel(getEnvDefault("LOG_LEVEL", "info")); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// SetupLogger configures the shared gommon logger.
func SetupLogger(cfg *Config) *log.Logger {
	logger := log.New("reciclame")
	logger.SetLevel(cfg.LogLevel)
	logger.SetHeader(`{"time":"${time_rfc3339}","level":"${level}","prefix":"${prefix}","file":"${short_file}","line":"${line}"}`)
	log.SetLevel(cfg.LogLevel)

	return logger
}

func getEnvDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %q", val)
	}
	return n, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid duration: %q (use Go format: 30s, 5m, 1h)", val)
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be > 0, got %q", val)
	}
	return d, nil
}

func parseLogLevel(level string) (log.Lvl, error) {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	default:
		return log.INFO, fmt.Errorf("unknown level %q, expected debug, info, warn, error or off", level)
	}
}
