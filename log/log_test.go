package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Saffronius/acpgen/log"
)

func TestNew_DefaultLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.WithWriter(&buf))

	logger.Debug("hidden")
	logger.Info("shown", slog.String("key", "value"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
}

func TestNew_WithLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.WithWriter(&buf), log.WithLevel(slog.LevelDebug))

	logger.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestNew_WithSource(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.WithWriter(&buf), log.WithSource(true))

	logger.Info("located")
	assert.Contains(t, buf.String(), "log_test.go")
}
