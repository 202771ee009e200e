package cache

import (
	"context"

	"github.com/Harsh-GitHup/go-weather-app/internal/forecast"
)

// Fetcher decorates a forecast.Fetcher with the TTL cache. Hits are marked
// Cached; only complete results (ones carrying current conditions) are
// stored, so "not found" answers and failures are always re-fetched.
type Fetcher struct {
	next  forecast.Fetcher
	store *Store
}

var _ forecast.Fetcher = (*Fetcher)(nil)

// NewFetcher wraps next with store.
func NewFetcher(next forecast.Fetcher, store *Store) *Fetcher {
	return &Fetcher{next: next, store: store}
}

// Fetch serves from the cache when possible, delegating upstream otherwise.
func (f *Fetcher) Fetch(ctx context.Context, query string, units forecast.Units) (forecast.FetchResult, error) {
	key := NewKey(query, units)

	if res, ok := f.store.Get(key); ok {
		res.Cached = true
		return res, nil
	}

	res, err := f.next.Fetch(ctx, query, units)
	if err != nil {
		return res, err
	}
	if res.Current != nil {
		f.store.Put(key, res)
	}
	return res, nil
}
