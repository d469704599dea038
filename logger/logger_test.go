package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/err0r500/go-ldp-server/logger"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, false)
	l.Debug("hidden")
	l.Info("put", "identifier", "gold:repository/a")
	l.Error("failed", "status", 500)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "identifier=gold:repository/a")
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "status=500")
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	logger.New(&buf, true).Debug("tombstone", "identifier", "gold:repository/a")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), `msg=tombstone`)
}
