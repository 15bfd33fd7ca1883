package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	plerrors "github.com/alexisbeaulieu97/plrefresh/pkg/errors"
)

const fileVersion = "1"

type fileDocument struct {
	Version string               `json:"version"`
	Entries map[string]time.Time `json:"entries"`
}

// FileStore keeps timestamps in a JSON document, rewritten atomically on
// every update.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	entries map[string]time.Time
}

// NewFileStore creates the directory for path and loads any existing document.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		entries: make(map[string]time.Time),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, plerrors.NewStoreError("open", path, "", err)
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// Path is the backing file.
func (s *FileStore) Path() string { return s.path }

// Load replaces the in-memory entries with the file contents.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return plerrors.NewStoreError("load", s.path, "", err)
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return plerrors.NewStoreError("load", s.path, "", err)
	}
	if doc.Version != fileVersion {
		return plerrors.NewStoreError("load", s.path, "", fmt.Errorf("unsupported version %q", doc.Version))
	}

	s.entries = doc.Entries
	if s.entries == nil {
		s.entries = make(map[string]time.Time)
	}
	return nil
}

func (s *FileStore) LastUpdated(key string) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	at, ok := s.entries[key]
	return at, ok
}

// SetLastUpdated records at under key and saves the file. On a failed save
// the previous value is kept.
func (s *FileStore) SetLastUpdated(key string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.entries[key]
	s.entries[key] = at
	if err := s.save(); err != nil {
		if had {
			s.entries[key] = prev
		} else {
			delete(s.entries, key)
		}
		return plerrors.NewStoreError("save", s.path, key, err)
	}
	return nil
}

func (s *FileStore) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, len(s.entries))
	for key, at := range s.entries {
		entries = append(entries, Entry{Key: key, At: at})
	}
	return sortEntries(entries)
}

// save must be called with mu held.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(fileDocument{Version: fileVersion, Entries: s.entries}, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
