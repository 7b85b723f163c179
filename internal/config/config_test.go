package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvMaze, EnvOrder, EnvTheme, EnvNoColor, EnvLogLevel, EnvLogFormat} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Order:     "relative",
		Theme:     "blocks",
		LogLevel:  "info",
		LogFormat: "text",
	}, cfg)
}

func TestLoad_EnvFileAndOverrides(t *testing.T) {
	clearEnv(t)
	file := filepath.Join(t.TempDir(), "run.env")
	require.NoError(t, os.WriteFile(file, []byte(
		"MAZERUNNER_MAZE=mazes/spiral.yaml\nMAZERUNNER_THEME=ascii\nMAZERUNNER_NO_COLOR=true\n",
	), 0o600))
	t.Setenv(EnvTheme, "blocks")

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "mazes/spiral.yaml", cfg.Maze)
	assert.Equal(t, "blocks", cfg.Theme, "process environment wins over the file")
	assert.True(t, cfg.NoColor)
}

func TestLoad_BadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvNoColor, "sometimes")
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.ErrorContains(t, err, EnvNoColor)
}
