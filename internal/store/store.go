// Package store persists the last-updated timestamps written by refresh
// headers.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/alexisbeaulieu97/plrefresh/pkg/refresh"
)

// Store is a refresh.TimeStore that can also enumerate its entries.
type Store interface {
	refresh.TimeStore
	Entries() []Entry
}

// Entry is one persisted timestamp.
type Entry struct {
	Key string    `json:"key"`
	At  time.Time `json:"at"`
}

// Backends accepted by Open.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// DefaultPath is $HOME/.plrefresh/last_updated.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".plrefresh", "last_updated.json"), nil
}

// Open builds the store for a backend. BackendNone yields a nil Store, which
// disables persistence.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendFile, "":
		if path == "" {
			p, err := DefaultPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		fs, err := NewFileStore(path)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendNone:
		return nil, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", backend)
}

func sortEntries(entries []Entry) []Entry {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}
