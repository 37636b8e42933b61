// Package file provides a record store backed by files on disk,
// the server-side equivalent of browser local storage. Each key maps
// to one file under the store's directory.
package file

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/venuedesk/venuedesk/internal/model"
	"github.com/venuedesk/venuedesk/internal/record"
)

// Store persists records as individual files under a directory
type Store struct {
	dir string

	mu sync.Mutex // serializes writes to avoid partial-file races
}

// New creates a file-backed record store rooted at dir,
// creating the directory if needed
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("record directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create record directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Ensure Store implements the interface
var _ record.Store = (*Store)(nil)

func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.ErrRecordNotFound
		}
		return nil, fmt.Errorf("read record %q: %w", key, err)
	}
	return data, nil
}

// Write stores the record atomically: the data lands in a temp file
// first and is renamed into place, so a crash mid-write never leaves
// a truncated record behind.
func (s *Store) Write(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp record: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write record %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close record %q: %w", key, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("commit record %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}

// path maps a key to a filename. Keys are hashed so arbitrary key
// strings (colons, slashes) stay filesystem-safe.
func (s *Store) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:16])+".record")
}
