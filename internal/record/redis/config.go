package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// KeyPrefix namespaces all record keys
	KeyPrefix string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// RecordTTL bounds how long a record lives without being rewritten.
	// Zero means records never expire.
	RecordTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		KeyPrefix:    "venuedesk",
		PoolSize:     10,
		MinIdleConns: 2,
		RecordTTL:    0,
	}
}
