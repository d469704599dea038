package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/err0r500/go-ldp-server/config"
	"github.com/err0r500/go-ldp-server/store/cache"
)

func TestOpenBackend(t *testing.T) {
	for _, driver := range []string{config.DriverMemory, config.DriverBolt, config.DriverBadger, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			cfg := config.Default()
			cfg.StoreDriver = driver
			cfg.StorePath = filepath.Join(t.TempDir(), "store")

			b, err := openBackend(context.Background(), cfg)
			require.NoError(t, err)
			assert.NoError(t, b.Close())
		})
	}
}

func TestOpenBackendCache(t *testing.T) {
	cfg := config.Default()
	cfg.CacheSize = 8

	b, err := openBackend(context.Background(), cfg)
	require.NoError(t, err)
	defer b.Close()
	assert.IsType(t, &cache.Backend{}, b)
}

func TestOpenBackendUnknown(t *testing.T) {
	cfg := config.Default()
	cfg.StoreDriver = "neo4j"

	_, err := openBackend(context.Background(), cfg)
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	assert.Equal(t, []byte{0xca, 0xfe}, key("cafe"))
	assert.Equal(t, []byte("not hex!"), key("not hex!"))
	assert.Empty(t, key(""))
}
