package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerunner/core"
	"github.com/katalvlaran/mazerunner/layout"
	"github.com/katalvlaran/mazerunner/render"
)

var plain = render.Plain(render.ASCII())

// hook is a 2×2 maze with (1,0) never reached.
func hook() (*core.Graph, core.CellSet) {
	g := core.NewGraph(core.Cell{Row: 0, Col: 0}, core.Cell{Row: 1, Col: 1})
	g.Connect(core.Cell{Row: 0, Col: 0}, core.Cell{Row: 0, Col: 1})
	g.Connect(core.Cell{Row: 0, Col: 1}, core.Cell{Row: 1, Col: 1})
	visited := core.NewCellSet(g.Cells()...)

	return g, visited
}

func TestRender_UnknownCells(t *testing.T) {
	g, visited := hook()
	got := render.Render(g, visited, nil, plain)
	assert.Equal(t, []string{
		"#####",
		"#S..#",
		"###.#",
		"#?#E#",
		"#####",
	}, got)
}

func TestRender_RouteOverlay(t *testing.T) {
	g, visited := hook()
	route := core.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	got := render.Render(g, visited, route, plain)
	assert.Equal(t, []string{
		"#####",
		"#S**#",
		"###*#",
		"#?#E#",
		"#####",
	}, got)
}

func TestRender_Dimensions(t *testing.T) {
	l, err := layout.Default()
	require.NoError(t, err)
	g := l.ReachableGraph()

	lines := render.Render(g, l.Reachable(), nil, plain)
	require.Len(t, lines, 2*l.Rows+1)
	for _, line := range lines {
		assert.Len(t, line, 2*l.Cols+1)
	}
	assert.Equal(t, strings.Join(lines, "\n"), render.String(g, l.Reachable(), nil, plain))
}

// TestRender_MatchesLayout checks the fully explored demo maze redraws the
// layout grid, with start and exit marked and boundary gaps closed.
func TestRender_MatchesLayout(t *testing.T) {
	l, err := layout.Default()
	require.NoError(t, err)
	lines := render.Render(l.ReachableGraph(), l.Reachable(), nil, plain)

	for y, line := range lines {
		for x, ch := range line {
			if y == 0 || x == 0 || y == len(lines)-1 || x == len(line)-1 {
				assert.Equal(t, '#', ch, "border at %d,%d", y, x)
			}
		}
	}
	sy, sx := 2*l.Start.Row+1, 2*l.Start.Col+1
	ey, ex := 2*l.Exit.Row+1, 2*l.Exit.Col+1
	assert.Equal(t, byte('S'), lines[sy][sx])
	assert.Equal(t, byte('E'), lines[ey][ex])
}

func TestRender_NothingToDraw(t *testing.T) {
	assert.Nil(t, render.Render(nil, nil, nil, plain))
}

func TestRender_VisitedOutsideGraphWidensBox(t *testing.T) {
	g := core.NewGraph(core.Cell{Row: 0, Col: 0}, core.Cell{Row: 9, Col: 9})
	visited := core.NewCellSet(core.Cell{Row: 0, Col: 0}, core.Cell{Row: 0, Col: 1})
	lines := render.Render(g, visited, nil, plain)
	assert.Equal(t, []string{"#####", "#S#.#", "#####"}, lines)
}

func TestThemes(t *testing.T) {
	blocks := render.Plain(render.Blocks())
	g, visited := hook()
	out := render.String(g, visited, nil, blocks)
	assert.Contains(t, out, "🟥")
	assert.Contains(t, out, "🟩")
	assert.Contains(t, out, "⬜")
	assert.Contains(t, out, "⬛")

	_, ok := render.ThemeByName("ascii")
	assert.True(t, ok)
	_, ok = render.ThemeByName("blocks")
	assert.True(t, ok)
	_, ok = render.ThemeByName("neon")
	assert.False(t, ok)
}
