package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/Harsh-GitHup/go-weather-app/internal/forecast"
)

// Key identifies one cached search result.
type Key struct {
	Query string
	Units forecast.Units
}

// NewKey canonicalizes a query into a cache key.
func NewKey(query string, units forecast.Units) Key {
	return Key{
		Query: strings.ToLower(strings.TrimSpace(query)),
		Units: units,
	}
}

type entry struct {
	result    forecast.FetchResult
	expiresAt time.Time
}

// Store is a concurrency-safe in-memory TTL cache of upstream fetch results.
// Expired entries are treated as misses on read and removed by Sweep.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[Key]entry
}

// New creates a Store whose entries live for ttl.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[Key]entry),
	}
}

// Get returns the cached result for key, if present and not expired.
func (s *Store) Get(key Key) (forecast.FetchResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return forecast.FetchResult{}, false
	}
	return e.result, true
}

// Put stores a result under key, replacing any previous entry.
func (s *Store) Put(key Key, result forecast.FetchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		result:    result,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Sweep removes expired entries and reports how many were evicted.
func (s *Store) Sweep() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, key)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of entries, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
