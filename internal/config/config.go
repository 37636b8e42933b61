// Package config loads application configuration from environment
// variables, with optional .env support for development.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// StorageBackend selects the record store implementation
type StorageBackend string

const (
	StorageMemory StorageBackend = "memory"
	StorageFile   StorageBackend = "file"
	StorageRedis  StorageBackend = "redis"
	StorageSQLite StorageBackend = "sqlite"
)

// UnmarshalText implements encoding.TextUnmarshaler for StorageBackend
func (b *StorageBackend) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "memory", "file", "redis", "sqlite":
		*b = StorageBackend(v)
		return nil
	default:
		return fmt.Errorf("invalid storage backend: %q (valid options: memory, file, redis, sqlite)", v)
	}
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	URL          string `env:"URL"            envDefault:"redis://localhost:6379"`
	PoolSize     int    `env:"POOL_SIZE"      envDefault:"10"`
	MinIdleConns int    `env:"MIN_IDLE_CONNS" envDefault:"2"`
}

// StorageConfig selects and configures the record store backend
type StorageConfig struct {
	Backend StorageBackend `env:"BACKEND" envDefault:"file"`

	// FileDir is the record directory for the file backend
	FileDir string `env:"FILE_DIR" envDefault:"data/session"`

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/venuedesk.db"`

	Redis RedisConfig `envPrefix:"REDIS_"`
}

// HTTPConfig holds HTTP server settings
type HTTPConfig struct {
	Host            string        `env:"HOST"`
	Port            int           `env:"PORT"             envDefault:"8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT"     envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"    envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to HTTP settings loaded from env
func (c *HTTPConfig) Sanitize() {
	if c.Port <= 0 || c.Port > 65535 {
		c.Port = 8080
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 15 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 30 * time.Second
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 30 * time.Second
	}
}

// IdentityConfig seeds the mock identity provider
type IdentityConfig struct {
	GuestHandle      string `env:"GUEST_HANDLE"       envDefault:"guest@venuedesk.dev"`
	GuestDisplayName string `env:"GUEST_DISPLAY_NAME" envDefault:"Sam Guest"`
	HostHandle       string `env:"HOST_HANDLE"        envDefault:"host@venuedesk.dev"`
	HostDisplayName  string `env:"HOST_DISPLAY_NAME"  envDefault:"Harper Host"`
}

// AppConfig is the top-level application configuration
type AppConfig struct {
	// Dev enables development-mode behavior (text logs, verbose errors)
	Dev bool `env:"DEV" envDefault:"false"`

	HTTP     HTTPConfig     `envPrefix:"HTTP_"`
	Storage  StorageConfig  `envPrefix:"STORAGE_"`
	Identity IdentityConfig `envPrefix:"IDENTITY_"`
}

// Sanitize applies guardrails after loading from env
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; missing .env is
// not an error.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config from env: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}
