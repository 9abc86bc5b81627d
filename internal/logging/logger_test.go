package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basecalc/internal/config"
)

func TestNew_DisabledIsNop(t *testing.T) {
	logger, err := New(config.LoggingConfig{Enabled: false}, "")
	require.NoError(t, err)
	require.NotNil(t, logger)
	// Must be safe to use without any file backing.
	logger.Info("ignored")
}

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "basecalc.log")
	logger, err := New(config.LoggingConfig{Enabled: true, Level: "debug"}, file)
	require.NoError(t, err)

	logger.Info("hello from test")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Enabled: true, Level: "shout"}, filepath.Join(t.TempDir(), "x.log"))
	assert.Error(t, err)
}
