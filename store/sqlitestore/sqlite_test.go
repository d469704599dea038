package sqlitestore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/err0r500/go-ldp-server/store"
	"github.com/err0r500/go-ldp-server/store/sqlitestore"
	"github.com/err0r500/go-ldp-server/store/storetest"
)

func TestBackend(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Backend {
		b, err := sqlitestore.New(context.Background(), filepath.Join(t.TempDir(), "ldp.sqlite"))
		require.NoError(t, err)
		t.Cleanup(func() { b.Close() })
		return b
	})
}
