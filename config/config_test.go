package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/err0r500/go-ldp-server/config"
	"github.com/err0r500/go-ldp-server/constant"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	assert.Equal(t, constant.DefaultPartition, c.Partition)
	assert.Equal(t, config.DriverMemory, c.StoreDriver)
	assert.NoError(t, config.Validate(c))
}

func TestLoadJSONFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"ListenHTTP":":9090","StoreDriver":"bolt","StorePath":"/tmp/x.db","CacheSize":64}`), 0644))

	c, err := config.LoadJSONFile(p)
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.ListenHTTP)
	assert.Equal(t, config.DriverBolt, c.StoreDriver)
	assert.Equal(t, 64, c.CacheSize)
	assert.Equal(t, constant.DefaultPartition, c.Partition)
}

func TestLoadJSONFileInvalid(t *testing.T) {
	dir := t.TempDir()

	_, err := config.LoadJSONFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	p := filepath.Join(dir, "driver.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"StoreDriver":"neo4j"}`), 0644))
	_, err = config.LoadJSONFile(p)
	assert.Error(t, err)

	p = filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(p, []byte(`{`), 0644))
	_, err = config.LoadJSONFile(p)
	assert.Error(t, err)
}
