package memory_test

import (
	"testing"

	"github.com/err0r500/go-ldp-server/store"
	"github.com/err0r500/go-ldp-server/store/memory"
	"github.com/err0r500/go-ldp-server/store/storetest"
)

func TestBackend(t *testing.T) {
	storetest.Run(t, func(*testing.T) store.Backend { return memory.New() })
}
