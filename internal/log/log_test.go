package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fougue/gmio-bumpversion/internal/log"
)

func TestGetLevel(t *testing.T) {
	tests := map[string]charmlog.Level{
		"":        charmlog.WarnLevel,
		"warn":    charmlog.WarnLevel,
		"WARNING": charmlog.WarnLevel,
		"debug":   charmlog.DebugLevel,
		"info":    charmlog.InfoLevel,
		"error":   charmlog.ErrorLevel,
	}
	for in, want := range tests {
		got, err := log.GetLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := log.GetLevel("loud")
	require.ErrorIs(t, err, log.ErrUnknownLevel)
}

func TestGetFormatter(t *testing.T) {
	f, err := log.GetFormatter("json")
	require.NoError(t, err)
	assert.Equal(t, charmlog.JSONFormatter, f)

	f, err = log.GetFormatter("")
	require.NoError(t, err)
	assert.Equal(t, charmlog.TextFormatter, f)

	_, err = log.GetFormatter("xml")
	require.ErrorIs(t, err, log.ErrUnknownFormat)
}

func TestCreateHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	h, err := log.CreateHandler(buf, "warn", "json")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("pattern not found", "file", "README.md")
	assert.Contains(t, buf.String(), "pattern not found")
	assert.Contains(t, buf.String(), "README.md")
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	require.NoError(t, log.Setup(buf, "debug", "logfmt"))
	slog.Debug("ready")
	assert.Contains(t, buf.String(), "ready")

	require.Error(t, log.Setup(buf, "debug", "yaml"))
}

func TestEnvOr(t *testing.T) {
	t.Setenv(log.LevelEnv, "")
	assert.Equal(t, "warn", log.EnvOr(log.LevelEnv, "warn"))

	t.Setenv(log.LevelEnv, "debug")
	assert.Equal(t, "debug", log.EnvOr(log.LevelEnv, "warn"))
}
