package dfs_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerunner/core"
	"github.com/katalvlaran/mazerunner/dfs"
	"github.com/katalvlaran/mazerunner/layout"
	"github.com/katalvlaran/mazerunner/robot"
)

func demoMaze(t testing.TB) *layout.Layout {
	t.Helper()
	l, err := layout.Default()
	require.NoError(t, err)

	return l
}

func openMaze(t testing.TB) *layout.Layout {
	t.Helper()
	l, err := layout.Load(filepath.Join("..", "layout", "testdata", "open3x3.yaml"))
	require.NoError(t, err)

	return l
}

// assertSameGraph checks got holds exactly the cells and passages of want.
func assertSameGraph(t *testing.T, want, got *core.Graph) {
	t.Helper()
	require.Equal(t, want.Cells(), got.Cells())
	assert.Equal(t, want.EdgeCount(), got.EdgeCount())
	for _, c := range want.Cells() {
		assert.Equal(t, want.Neighbors(c), got.Neighbors(c), "neighbors of %v", c)
	}
}

func TestExplore_NilInputs(t *testing.T) {
	l := demoMaze(t)
	_, err := dfs.Explore(nil, robot.NewSimulator(l), l.Voids)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.Explore(core.NewGraph(l.Start, l.Exit), nil, l.Voids)
	assert.ErrorIs(t, err, dfs.ErrRobotNil)
}

func TestExplore_OptionViolations(t *testing.T) {
	l := demoMaze(t)
	cases := map[string]dfs.Option{
		"NegativeLimit": dfs.WithMaxCells(-1),
		"BadOrder":      dfs.WithOrder(dfs.Order(5)),
		"BadHeading":    dfs.WithHeading(core.Direction(4)),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dfs.Explore(core.NewGraph(l.Start, l.Exit), robot.NewSimulator(l), l.Voids, opt)
			assert.ErrorIs(t, err, dfs.ErrOptionViolation)
		})
	}
}

// TestExplore_MapsExactlyReachable checks, for both direction orders, that
// the explored graph equals the layout's reachable graph, that voids never
// show up, and that the robot ends on the start cell.
func TestExplore_MapsExactlyReachable(t *testing.T) {
	for _, order := range []dfs.Order{dfs.RelativeOrder, dfs.FixedOrder} {
		t.Run(order.String(), func(t *testing.T) {
			l := demoMaze(t)
			sim := robot.NewSimulator(l)
			g := core.NewGraph(l.Start, l.Exit)

			res, err := dfs.Explore(g, sim, l.Voids, dfs.WithOrder(order))
			require.NoError(t, err)

			assertSameGraph(t, l.ReachableGraph(), g)
			assert.Equal(t, l.Reachable(), res.Visited)
			assert.Equal(t, l.Start, sim.Position())
			assert.False(t, g.HasCell(l.Start.Step(core.South)), "void below start")
			assert.False(t, g.HasCell(l.Exit.Step(core.North)), "void above exit")

			n := res.Visited.Len()
			assert.Equal(t, n-1, res.Backtracks)
			assert.Equal(t, 2*(n-1), res.Moves)
			assert.Equal(t, 2, res.VoidsSkipped)
			assert.True(t, res.ExitFound)
			assert.Equal(t, l.Exit, res.ExitSeen)
		})
	}
}

func TestExplore_FixedOrderDiscovery(t *testing.T) {
	l := openMaze(t)
	g := core.NewGraph(l.Start, l.Exit)

	res, err := dfs.Explore(g, robot.NewSimulator(l), l.Voids, dfs.WithOrder(dfs.FixedOrder))
	require.NoError(t, err)

	want := []core.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 2, Col: 1},
		{Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 2, Col: 0},
	}
	assert.Equal(t, want, res.Order)
	assert.Equal(t, 8, res.MaxDepth)
	assert.Equal(t, 12, g.EdgeCount())
}

// TestExplore_WithoutVoidsFallsOff shows why the void rules exist: the
// sensor sees no wall below the start and the robot drives off the table.
func TestExplore_WithoutVoidsFallsOff(t *testing.T) {
	l := demoMaze(t)
	sim := robot.NewSimulator(l)

	_, err := dfs.Explore(core.NewGraph(l.Start, l.Exit), sim, nil)
	require.ErrorIs(t, err, robot.ErrFellOff)
	assert.True(t, sim.Fallen())
}

func TestExplore_Hooks(t *testing.T) {
	l := demoMaze(t)
	var visits, backs int
	res, err := dfs.Explore(core.NewGraph(l.Start, l.Exit), robot.NewSimulator(l), l.Voids,
		dfs.WithOnVisit(func(core.Cell) error { visits++; return nil }),
		dfs.WithOnBacktrack(func(from, to core.Cell) {
			backs++
			assert.True(t, core.Adjacent(from, to))
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Visited.Len(), visits)
	assert.Equal(t, res.Backtracks, backs)

	stop := errors.New("stop")
	_, err = dfs.Explore(core.NewGraph(l.Start, l.Exit), robot.NewSimulator(l), l.Voids,
		dfs.WithOnVisit(func(c core.Cell) error {
			if c == l.Start {
				return nil
			}
			return stop
		}),
	)
	assert.ErrorIs(t, err, stop)
}

func TestExplore_ContextCanceled(t *testing.T) {
	l := demoMaze(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dfs.Explore(core.NewGraph(l.Start, l.Exit), robot.NewSimulator(l), l.Voids, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, res.Visited.Len())
}

func TestExplore_MaxCells(t *testing.T) {
	l := openMaze(t)
	res, err := dfs.Explore(core.NewGraph(l.Start, l.Exit), robot.NewSimulator(l), l.Voids, dfs.WithMaxCells(3))
	assert.ErrorIs(t, err, dfs.ErrCellLimit)
	assert.Equal(t, 3, res.Visited.Len())
}

// brokenSensor fails every wall query.
type brokenSensor struct{}

var errSensor = errors.New("sensor offline")

func (brokenSensor) Move(core.Direction) error                { return nil }
func (brokenSensor) WallPresent(core.Direction) (bool, error) { return false, errSensor }

func TestExplore_SensorErrorPropagates(t *testing.T) {
	g := core.NewGraph(core.Cell{}, core.Cell{Row: 1})
	res, err := dfs.Explore(g, brokenSensor{}, nil)
	assert.ErrorIs(t, err, errSensor)
	assert.False(t, res.ExitFound, "robot without an exit sensor never reports one")
}

func TestParseOrder(t *testing.T) {
	o, err := dfs.ParseOrder("Fixed")
	require.NoError(t, err)
	assert.Equal(t, dfs.FixedOrder, o)

	o, err = dfs.ParseOrder("")
	require.NoError(t, err)
	assert.Equal(t, dfs.RelativeOrder, o)

	_, err = dfs.ParseOrder("spiral")
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}
