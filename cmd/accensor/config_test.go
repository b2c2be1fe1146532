package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, "*", cfg.Replacement)
	require.Nil(t, cfg.ignoreSet())
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("replacement = \"#\"\nignore_chars = \"-_\"\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "#", cfg.Replacement)

	set := cfg.ignoreSet()
	require.Contains(t, set, '-')
	require.Contains(t, set, '_')
}

func TestLoadConfigInvalidFile(t *testing.T) {
	_, err := loadConfig("/nonexistent/config.toml")
	require.Error(t, err)
}
