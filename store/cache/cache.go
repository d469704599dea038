package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"

	"github.com/err0r500/go-ldp-server/store"
)

// Backend keeps the current entries of the most recently used resources in
// memory in front of another backend. Versions are not cached.
type Backend struct {
	next store.Backend

	mu    sync.Mutex
	cache *lru.Cache
}

// New wraps next with an LRU of size entries
func New(next store.Backend, size int) *Backend {
	return &Backend{next: next, cache: lru.New(size)}
}

func (b *Backend) Current(ctx context.Context, identifier string) (store.Entry, error) {
	b.mu.Lock()
	v, ok := b.cache.Get(identifier)
	b.mu.Unlock()
	if ok {
		return v.(store.Entry), nil
	}

	e, err := b.next.Current(ctx, identifier)
	if err != nil {
		return e, err
	}
	b.mu.Lock()
	b.cache.Add(identifier, e)
	b.mu.Unlock()
	return e, nil
}

func (b *Backend) Version(ctx context.Context, identifier string, at time.Time) (store.Entry, error) {
	return b.next.Version(ctx, identifier, at)
}

func (b *Backend) Versions(ctx context.Context, identifier string) ([]time.Time, error) {
	return b.next.Versions(ctx, identifier)
}

func (b *Backend) Save(ctx context.Context, identifier string, prev time.Time, e store.Entry) error {
	err := b.next.Save(ctx, identifier, prev, e)

	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case err == nil:
		b.cache.Add(identifier, e)
	case errors.Is(err, store.ErrConflict):
		b.cache.Remove(identifier)
	}
	return err
}

// Len returns the number of cached entries
func (b *Backend) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cache.Len()
}

func (b *Backend) Close() error {
	b.mu.Lock()
	b.cache.Clear()
	b.mu.Unlock()
	return b.next.Close()
}
