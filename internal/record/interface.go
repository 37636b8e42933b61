package record

import "context"

// Store defines the interface for durable key/value record persistence.
// Implementations must treat a missing key as model.ErrRecordNotFound
// on Read and as a no-op on Delete.
type Store interface {
	// Read returns the record stored under key
	Read(ctx context.Context, key string) ([]byte, error)

	// Write stores the record under key, replacing any existing record
	Write(ctx context.Context, key string, data []byte) error

	// Delete removes the record stored under key
	Delete(ctx context.Context, key string) error
}
