package memory

import (
	"context"
	"sync"
	"time"

	"github.com/err0r500/go-ldp-server/store"
)

type backend struct {
	mu       sync.RWMutex
	versions map[string][]store.Entry
}

// New returns a backend keeping every entry in memory
func New() store.Backend {
	return &backend{versions: map[string][]store.Entry{}}
}

func (b *backend) Current(_ context.Context, identifier string) (store.Entry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v := b.versions[identifier]
	if len(v) == 0 {
		return store.Entry{}, store.ErrNotFound
	}
	return v[len(v)-1], nil
}

func (b *backend) Version(_ context.Context, identifier string, at time.Time) (store.Entry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i := len(b.versions[identifier]) - 1; i >= 0; i-- {
		if e := b.versions[identifier][i]; !e.Modified.After(at) {
			return e, nil
		}
	}
	return store.Entry{}, store.ErrNotFound
}

func (b *backend) Versions(_ context.Context, identifier string) ([]time.Time, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]time.Time, 0, len(b.versions[identifier]))
	for _, e := range b.versions[identifier] {
		out = append(out, e.Modified)
	}
	return out, nil
}

func (b *backend) Save(_ context.Context, identifier string, prev time.Time, e store.Entry) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	v := b.versions[identifier]
	var cur time.Time
	if len(v) > 0 {
		cur = v[len(v)-1].Modified
	}
	if !cur.Equal(prev) {
		return store.ErrConflict
	}
	b.versions[identifier] = append(v, store.Entry{Modified: e.Modified, Data: append([]byte(nil), e.Data...)})
	return nil
}

func (b *backend) Close() error {
	return nil
}
