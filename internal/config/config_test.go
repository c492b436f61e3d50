package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("PHOTOACTIVATION_CONFIG", "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"488nm", "562nm", "642nm"}, cfg.Lasers)
	assert.Equal(t, []string{"Point", "Line", "Square"}, cfg.Patterns)
	assert.Empty(t, cfg.Defaults)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "photoactivation.yaml")
	content := `
lasers:
  - 405nm
patterns:
  - Spot
  - Raster
defaults:
  power: "12.5"
  x_galvo_pin: PXI6259/ao0
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("PHOTOACTIVATION_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"405nm"}, cfg.Lasers)
	assert.Equal(t, []string{"Spot", "Raster"}, cfg.Patterns)
	assert.Equal(t, "12.5", cfg.Defaults["power"])
	assert.Equal(t, "PXI6259/ao0", cfg.Defaults["x_galvo_pin"])
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("PHOTOACTIVATION_LOG_LEVEL", "warn")
	t.Setenv("PHOTOACTIVATION_LASERS", "488nm,561nm")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, []string{"488nm", "561nm"}, cfg.Lasers)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv("PHOTOACTIVATION_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
