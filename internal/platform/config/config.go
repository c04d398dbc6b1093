// Package config builds runtime configuration from environment variables so
// main stays lean.
package config

import (
	"os"
	"strings"
	"time"
)

// Store backends the server can run against.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Server captures process-level configuration.
type Server struct {
	Addr            string
	StoreBackend    string
	PostgresDSN     string
	RedisURL        string
	KafkaSeeds      []string
	KafkaTopic      string
	JWTSigningKey   string
	EventBuffer     int
	ShutdownTimeout time.Duration
}

// FromEnv reads configuration from NOTARY_* environment variables, with
// development defaults.
func FromEnv() Server {
	cfg := Server{
		Addr:            envOr("NOTARY_ADDR", ":8080"),
		StoreBackend:    envOr("NOTARY_STORE", StoreMemory),
		PostgresDSN:     os.Getenv("NOTARY_POSTGRES_DSN"),
		RedisURL:        os.Getenv("NOTARY_REDIS_URL"),
		KafkaTopic:      envOr("NOTARY_KAFKA_TOPIC", "notary.events"),
		EventBuffer:     64,
		ShutdownTimeout: 10 * time.Second,
	}

	if seeds := os.Getenv("NOTARY_KAFKA_SEEDS"); seeds != "" {
		cfg.KafkaSeeds = strings.Split(seeds, ",")
	}

	cfg.JWTSigningKey = os.Getenv("NOTARY_JWT_SIGNING_KEY")
	if cfg.JWTSigningKey == "" {
		// Development default - must be overridden in production.
		cfg.JWTSigningKey = "dev-secret-key-change-in-production"
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
