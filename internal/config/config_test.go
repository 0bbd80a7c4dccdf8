package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/nestegg/internal/scenario"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	goal := 75000.0
	cfg := DefaultConfig()
	cfg.Defaults.Principal = 2500
	cfg.Defaults.Goal = &goal
	cfg.Display.CurrencySymbol = "$"
	cfg.Display.SymbolAfter = false
	cfg.Appearance.Theme = "terminal"

	require.NoError(t, Save(cfg))
	assert.True(t, Exists())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, appName), 0o755))
	content := "[defaults]\nannual_rate_pct = 4.5\n"
	require.NoError(t, os.WriteFile(Path(), []byte(content), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	want := scenario.Defaults()
	want.AnnualRatePct = 4.5
	assert.Equal(t, want, cfg.Defaults)
	assert.Equal(t, "€", cfg.Display.CurrencySymbol)
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, appName), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[defaults\n"), 0o600))

	_, err := Load()
	assert.ErrorContains(t, err, "parsing config")
}

func TestStorePath(t *testing.T) {
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(state, appName, "nestegg.db"), StorePath(cfg))

	cfg.Store.Path = "/tmp/custom.db"
	assert.Equal(t, "/tmp/custom.db", StorePath(cfg))
}
