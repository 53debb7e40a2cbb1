package config

import (
	"encoding/base64"
	"errors"
	"os"
	"strconv"
	"time"
)

const minSecretBytes = 32

type Config struct {
	ListenAddr  string
	DatabaseDSN string

	JWTSecretBase64 string
	AccessTTL       time.Duration
	RefreshTTL      time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LoginRateLimit      int
	LoginRateWindow     time.Duration
	RateLimitFailClosed bool
}

func FromEnv() Config {
	return Config{
		ListenAddr:          envDefault("LISTEN_ADDR", ":8080"),
		DatabaseDSN:         envDefault("DATABASE_DSN", "host=localhost user=darum password=darum dbname=darum port=5432 sslmode=disable"),
		JWTSecretBase64:     os.Getenv("JWT_SECRET_KEY"),
		AccessTTL:           envMillis("JWT_EXPIRATION_MS", 15*time.Minute),
		RefreshTTL:          envMillis("JWT_REFRESH_MS", 7*24*time.Hour),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             envInt("REDIS_DB", 0),
		LoginRateLimit:      envInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow:     envMillis("LOGIN_RATE_WINDOW_MS", time.Minute),
		RateLimitFailClosed: envBool("RATE_LIMIT_FAIL_CLOSED", false),
	}
}

// Validate enforces the startup invariants: a decodable secret of at least
// 256 bits and a refresh TTL strictly longer than the access TTL.
func (c Config) Validate() error {
	key, err := base64.StdEncoding.DecodeString(c.JWTSecretBase64)
	if err != nil {
		return errors.New("JWT_SECRET_KEY must be base64")
	}
	if len(key) < minSecretBytes {
		return errors.New("JWT_SECRET_KEY must decode to at least 256 bits")
	}
	if c.AccessTTL <= 0 {
		return errors.New("access token TTL must be positive")
	}
	if c.RefreshTTL <= c.AccessTTL {
		return errors.New("refresh token TTL must exceed access token TTL")
	}
	return nil
}

func envDefault(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func envMillis(key string, def time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return def
	}
	return time.Duration(parsed) * time.Millisecond
}

func envBool(key string, def bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return parsed
}
