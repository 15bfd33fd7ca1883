package store

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps timestamps for the life of the process.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: cache.New(cache.NoExpiration, 0)}
}

func (s *MemoryStore) LastUpdated(key string) (time.Time, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return time.Time{}, false
	}
	at, ok := v.(time.Time)
	return at, ok
}

func (s *MemoryStore) SetLastUpdated(key string, at time.Time) error {
	s.cache.Set(key, at, cache.NoExpiration)
	return nil
}

func (s *MemoryStore) Entries() []Entry {
	items := s.cache.Items()
	entries := make([]Entry, 0, len(items))
	for key, item := range items {
		if at, ok := item.Object.(time.Time); ok {
			entries = append(entries, Entry{Key: key, At: at})
		}
	}
	return sortEntries(entries)
}
