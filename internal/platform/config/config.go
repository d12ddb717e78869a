// Package config builds runtime configuration from environment variables so
// main stays lean. Every external dependency is optional in development: an
// empty connection URL means the corresponding in-memory fallback is used.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the top-level application configuration.
type Config struct {
	Server   Server
	Logging  Logging
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Logging controls the structured logger.
type Logging struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format is "json" or "text".
	Format string
}

// PostgresConfig configures the citizen profile store and the audit sink.
// An empty URL disables Postgres and the in-memory stores are used instead.
type PostgresConfig struct {
	URL          string
	MaxConns     int32
	ConnLifetime time.Duration
}

// RedisConfig configures the application store cache.
// An empty URL disables Redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the audit event publisher.
// An empty broker list disables Kafka publishing.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

// FromEnv builds the full configuration from environment variables,
// with development defaults everywhere.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr:            envOr("JANSETU_ADDR", ":8080"),
			ShutdownTimeout: envDuration("JANSETU_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Logging: Logging{
			Level:  envOr("JANSETU_LOG_LEVEL", "info"),
			Format: envOr("JANSETU_LOG_FORMAT", "json"),
		},
		Postgres: PostgresConfig{
			URL:          os.Getenv("JANSETU_POSTGRES_URL"),
			MaxConns:     int32(envInt("JANSETU_POSTGRES_MAX_CONNS", 8)),
			ConnLifetime: envDuration("JANSETU_POSTGRES_CONN_LIFETIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("JANSETU_REDIS_URL"),
			PoolSize:     envInt("JANSETU_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("JANSETU_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("JANSETU_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("JANSETU_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("JANSETU_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(os.Getenv("JANSETU_KAFKA_BROKERS")),
			AuditTopic: envOr("JANSETU_KAFKA_AUDIT_TOPIC", "jansetu.audit"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
