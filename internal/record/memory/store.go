package memory

import (
	"context"
	"sync"

	"github.com/venuedesk/venuedesk/internal/model"
	"github.com/venuedesk/venuedesk/internal/record"
)

// Store is an in-memory implementation of the record store.
// Contents do not survive process restarts; intended for tests
// and development.
type Store struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// New creates a new in-memory record store
func New() *Store {
	return &Store{
		records: make(map[string][]byte),
	}
}

// Ensure Store implements the interface
var _ record.Store = (*Store)(nil)

func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.records[key]
	if !ok {
		return nil, model.ErrRecordNotFound
	}

	// Copy so callers cannot mutate stored state
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *Store) Write(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.records[key] = stored
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}
