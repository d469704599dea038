package boltstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/err0r500/go-ldp-server/store"
	"github.com/err0r500/go-ldp-server/store/boltstore"
	"github.com/err0r500/go-ldp-server/store/storetest"
)

func TestBackend(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Backend {
		b, err := boltstore.New(filepath.Join(t.TempDir(), "ldp.db"))
		require.NoError(t, err)
		t.Cleanup(func() { b.Close() })
		return b
	})
}
