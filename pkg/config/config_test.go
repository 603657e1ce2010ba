package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "file", cfg.Repository)
	assert.Equal(t, "getaway.db", cfg.SQLitePath)
	assert.Equal(t, "", cfg.DatabaseURL)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `{"logLevel": "debug", "tickRate": 30, "repository": "sqlite"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "getaway.cfg.json"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, "sqlite", cfg.Repository)
	// untouched keys keep their defaults
	assert.Equal(t, "getaway.db", cfg.SQLitePath)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GETAWAY_LOGLEVEL", "trace")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "trace", cfg.LogLevel)
}
