package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store interface for whole-document collection storage. Every collection
// (fields, bookings, settings) is one JSON document read and written as a
// unit; there are no partial updates.
type Store interface {
	// Read returns the raw document for a collection. found is false if the
	// collection has never been written.
	Read(collection string) (data []byte, found bool, err error)

	// Write overwrites the entire collection document.
	Write(collection string, data []byte) error
}

// FileStore keeps one JSON file per collection under a data directory
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "data/"
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}

	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Read(collection string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(collection))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read collection %s: %w", collection, err)
	}

	return data, true, nil
}

func (s *FileStore) Write(collection string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Write to a temp file first so a crash mid-write never leaves a
	// truncated collection behind
	target := s.path(collection)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}

	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("replace collection %s: %w", collection, err)
	}

	return nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// MemoryStore is an in-memory Store used by tests
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Read(collection string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[collection]
	if !ok {
		return nil, false, nil
	}

	// Copy so callers cannot mutate the stored document
	out := make([]byte, len(data))
	copy(out, data)

	return out, true, nil
}

func (s *MemoryStore) Write(collection string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.data[collection] = stored

	return nil
}
