// Package storetest holds the behaviour every store.Backend shares
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/err0r500/go-ldp-server/store"
)

var (
	t1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 = t1.Add(time.Hour)
	t3 = t2.Add(time.Hour)
)

// Run exercises a fresh backend returned by open
func Run(t *testing.T, open func(t *testing.T) store.Backend) {
	ctx := context.Background()

	t.Run("absent", func(t *testing.T) {
		b := open(t)
		_, err := b.Current(ctx, "gold:x")
		assert.ErrorIs(t, err, store.ErrNotFound)
		_, err = b.Version(ctx, "gold:x", t1)
		assert.ErrorIs(t, err, store.ErrNotFound)
		versions, err := b.Versions(ctx, "gold:x")
		require.NoError(t, err)
		assert.Empty(t, versions)
	})

	t.Run("history", func(t *testing.T) {
		b := open(t)
		require.NoError(t, b.Save(ctx, "gold:x", time.Time{}, store.Entry{Modified: t1, Data: []byte("one")}))
		require.NoError(t, b.Save(ctx, "gold:x", t1, store.Entry{Modified: t2, Data: []byte("two")}))
		require.NoError(t, b.Save(ctx, "gold:x/child", time.Time{}, store.Entry{Modified: t2, Data: []byte("child")}))

		e, err := b.Current(ctx, "gold:x")
		require.NoError(t, err)
		assert.True(t, e.Modified.Equal(t2))
		assert.Equal(t, "two", string(e.Data))

		versions, err := b.Versions(ctx, "gold:x")
		require.NoError(t, err)
		require.Len(t, versions, 2)
		assert.True(t, versions[0].Equal(t1))
		assert.True(t, versions[1].Equal(t2))

		e, err = b.Version(ctx, "gold:x", t1.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, "one", string(e.Data))
		e, err = b.Version(ctx, "gold:x", t2)
		require.NoError(t, err)
		assert.Equal(t, "two", string(e.Data))
		e, err = b.Version(ctx, "gold:x", t3)
		require.NoError(t, err)
		assert.Equal(t, "two", string(e.Data))
		_, err = b.Version(ctx, "gold:x", t1.Add(-time.Minute))
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("compare and swap", func(t *testing.T) {
		b := open(t)
		require.NoError(t, b.Save(ctx, "gold:x", time.Time{}, store.Entry{Modified: t1, Data: []byte("one")}))
		assert.ErrorIs(t, b.Save(ctx, "gold:x", time.Time{}, store.Entry{Modified: t2, Data: []byte("lost")}), store.ErrConflict)
		assert.ErrorIs(t, b.Save(ctx, "gold:x", t3, store.Entry{Modified: t2, Data: []byte("lost")}), store.ErrConflict)

		e, err := b.Current(ctx, "gold:x")
		require.NoError(t, err)
		assert.Equal(t, "one", string(e.Data))
	})
}
