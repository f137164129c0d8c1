package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err, "missing default config file is fine")
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err, "an explicitly given path must exist")
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 1280\ndebug: true\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 1280, cfg.Width)
	require.Equal(t, DefaultConfig().Height, cfg.Height, "unset keys keep their defaults")
	require.Equal(t, DefaultConfig().Title, cfg.Title)
	require.True(t, cfg.Debug)
}

func TestLoadConfigRejectsBadSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: -3\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
