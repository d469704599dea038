package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/domain"
	"github.com/err0r500/go-ldp-server/rdfutil"
)

// Store drivers
const (
	DriverMemory = "memory"
	DriverBolt   = "bolt"
	DriverBadger = "badger"
	DriverSQLite = "sqlite"
)

// Default creates a new config object
func Default() *domain.ServerConfig {
	return &domain.ServerConfig{
		ListenHTTP:           ":8080",
		Partition:            constant.DefaultPartition,
		StoreDriver:          DriverMemory,
		StorePath:            filepath.Join(os.TempDir(), "ldp"),
		BinaryRoot:           filepath.Join(os.TempDir(), "ldp-binaries"),
		CookieAge:            8736, // hours (1 year)
		DefaultJSONLDProfile: rdfutil.DefaultProfile,
		RequestTimeout:       30 * time.Second,
	}
}

// LoadJSONFile overlays the JSON file on the defaults. Fields missing from
// the file keep their default value.
func LoadJSONFile(filename string) (*domain.ServerConfig, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	c := Default()
	if err := json.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return c, Validate(c)
}

// Validate reports the first inconsistent setting
func Validate(c *domain.ServerConfig) error {
	switch c.StoreDriver {
	case DriverMemory, DriverBolt, DriverBadger, DriverSQLite:
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	if c.StoreDriver != DriverMemory && len(c.StorePath) == 0 {
		return fmt.Errorf("store driver %s needs a path", c.StoreDriver)
	}
	if len(c.Partition) == 0 {
		return fmt.Errorf("empty partition")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("negative cache size %d", c.CacheSize)
	}
	return nil
}
