package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerunner/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{config.EnvMaze, config.EnvOrder, config.EnvTheme, config.EnvNoColor, config.EnvLogLevel, config.EnvLogFormat} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func fixture(name string) string {
	p, _ := filepath.Abs(filepath.Join("..", "..", "layout", "testdata", name))
	return p
}

func TestRoot_DefaultMaze(t *testing.T) {
	out, err := execute(t, "--theme", "ascii", "--no-color")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `Maze "demo"`), out)
	assert.Contains(t, out, "Shortest path (6 moves)")
	assert.Contains(t, out, "Mission complete!")
}

func TestRoot_LayoutFileAndFixedOrder(t *testing.T) {
	out, err := execute(t, "--maze", fixture("open3x3.yaml"), "--order", "fixed", "--theme", "ascii", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Shortest path (4 moves)")
}

func TestRoot_BadFlags(t *testing.T) {
	_, err := execute(t, "--theme", "neon")
	assert.ErrorContains(t, err, "neon")

	_, err = execute(t, "--order", "sideways")
	assert.Error(t, err)

	_, err = execute(t, "--log-format", "xml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", "--maze", fixture("open3x3.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "OK open3x3: 3x3, 9 reachable cells, 0 boundary voids, exit in 4 moves\n", out)

	_, err = execute(t, "validate", "--maze", fixture("uncovered_gap.yaml"))
	assert.Error(t, err)
}
