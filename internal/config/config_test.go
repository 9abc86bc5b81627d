package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, uint32(10), cfg.Calculator.DefaultRadix)
	assert.Equal(t, 16, cfg.Calculator.FracDigits)
	assert.False(t, cfg.Logging.Enabled)

	d, err := cfg.ParseEvalTimeout()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, d)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
calculator:
  default_radix: 16
  frac_digits: 8
  eval_timeout: 2s
logging:
  enabled: true
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(16), cfg.Calculator.DefaultRadix)
	assert.Equal(t, 8, cfg.Calculator.FracDigits)
	assert.True(t, cfg.Logging.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)

	d, err := cfg.ParseEvalTimeout()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, uint32(10), cfg.Calculator.DefaultRadix)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BASECALC_RADIX", "2")
	t.Setenv("BASECALC_FRAC_DIGITS", "4")
	t.Setenv("BASECALC_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, uint32(2), cfg.Calculator.DefaultRadix)
	assert.Equal(t, 4, cfg.Calculator.FracDigits)
	assert.True(t, cfg.Logging.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("bad radix", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("calculator:\n  default_radix: 7\n"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("bad timeout", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("calculator:\n  eval_timeout: nope\n"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
