package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/venuedesk/venuedesk/internal/config"
	"github.com/venuedesk/venuedesk/internal/dependencies/clock"
	"github.com/venuedesk/venuedesk/internal/identity"
	"github.com/venuedesk/venuedesk/internal/overlay"
	"github.com/venuedesk/venuedesk/internal/record"
	filestore "github.com/venuedesk/venuedesk/internal/record/file"
	"github.com/venuedesk/venuedesk/internal/record/memory"
	redisstore "github.com/venuedesk/venuedesk/internal/record/redis"
	sqlitestore "github.com/venuedesk/venuedesk/internal/record/sqlite"
	"github.com/venuedesk/venuedesk/internal/session"
)

// App contains all wired application components
type App struct {
	// Storage
	Records record.Store

	// External dependencies
	Clock clock.Clock

	// Services
	Provider     identity.Provider
	Sessions     *session.Store
	Interactions *overlay.Bus
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Storage selects and configures the record backend
	// If zero value, defaults to the memory backend
	Storage config.StorageConfig
	// Identity seeds the mock identity provider
	// If zero value, defaults to the stock development identities
	Identity config.IdentityConfig
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	records, err := newRecordStore(cfg.Storage)
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	provider := identity.NewMockProvider(mockConfig(cfg.Identity), clk)

	return newWithDependencies(records, clk, provider, logger), nil
}

// newRecordStore creates the record store selected by cfg.Backend
func newRecordStore(cfg config.StorageConfig) (record.Store, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = config.StorageMemory
	}

	switch backend {
	case config.StorageMemory:
		return memory.New(), nil
	case config.StorageFile:
		return filestore.New(cfg.FileDir)
	case config.StorageRedis:
		rcfg := redisstore.DefaultConfig()
		rcfg.URL = cfg.Redis.URL
		if cfg.Redis.PoolSize > 0 {
			rcfg.PoolSize = cfg.Redis.PoolSize
		}
		if cfg.Redis.MinIdleConns > 0 {
			rcfg.MinIdleConns = cfg.Redis.MinIdleConns
		}
		return redisstore.New(rcfg)
	case config.StorageSQLite:
		return sqlitestore.New(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("invalid storage backend: %q", backend)
	}
}

// mockConfig maps identity settings onto the mock provider, falling
// back to the stock development identities for unset fields
func mockConfig(cfg config.IdentityConfig) identity.MockConfig {
	mock := identity.DefaultMockConfig()
	if cfg.GuestHandle != "" {
		mock.GuestHandle = cfg.GuestHandle
	}
	if cfg.GuestDisplayName != "" {
		mock.GuestDisplayName = cfg.GuestDisplayName
	}
	if cfg.HostHandle != "" {
		mock.HostHandle = cfg.HostHandle
	}
	if cfg.HostDisplayName != "" {
		mock.HostDisplayName = cfg.HostDisplayName
	}
	return mock
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(records record.Store, clk clock.Clock, provider identity.Provider, logger *slog.Logger) *App {
	sessions := session.New(records, provider, logger)
	interactions := overlay.NewBus(logger)

	return &App{
		Records:      records,
		Clock:        clk,
		Provider:     provider,
		Sessions:     sessions,
		Interactions: interactions,
	}
}
