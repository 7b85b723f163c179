package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazerunner/bfs"
	"github.com/katalvlaran/mazerunner/boundary"
	"github.com/katalvlaran/mazerunner/core"
	"github.com/katalvlaran/mazerunner/dfs"
	"github.com/katalvlaran/mazerunner/render"
	"github.com/katalvlaran/mazerunner/robot"
	"github.com/katalvlaran/mazerunner/traverse"
)

var (
	// ErrRobotNil indicates a Mission without a robot.
	ErrRobotNil = errors.New("solver: robot is nil")

	// ErrExitUnreachable indicates mapping finished without connecting the
	// exit to the start. It wraps bfs.ErrNoPath.
	ErrExitUnreachable = errors.New("solver: exit unreachable")
)

// CompleteMessage is printed when the robot is home again.
const CompleteMessage = "Mission complete!"

// Mission describes one run.
type Mission struct {
	Robot  robot.Robot
	Start  core.Cell
	Exit   core.Cell
	Rules  *boundary.Rules
	Out    io.Writer
	Theme  *render.Theme
	Logger *slog.Logger
	Order  dfs.Order
}

// Report summarizes a finished or aborted run.
type Report struct {
	RunID       string
	Graph       *core.Graph
	Visited     core.CellSet
	Route       core.Path
	Exploration *dfs.Result
	Outbound    int
	Return      int
}

// Run executes the mission. On failure the partial Report is returned
// with the error.
func (m *Mission) Run(ctx context.Context) (*Report, error) {
	if m.Robot == nil {
		return nil, ErrRobotNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	out := m.Out
	if out == nil {
		out = io.Discard
	}
	theme := render.Blocks()
	if m.Theme != nil {
		theme = *m.Theme
	}
	base := m.Logger
	if base == nil {
		base = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	rep := &Report{RunID: uuid.NewString()}
	log := base.With("run_id", rep.RunID)
	bot := robot.Logged(m.Robot, log)

	// mapping
	rep.Graph = core.NewGraph(m.Start, m.Exit)
	log.Info("mission.mapping.start", "start", m.Start.String(), "exit", m.Exit.String(), "order", m.Order.String())
	res, err := dfs.Explore(rep.Graph, bot, m.Rules,
		dfs.WithContext(ctx),
		dfs.WithOrder(m.Order),
		dfs.WithOnBacktrack(func(from, to core.Cell) {
			log.Debug("mission.mapping.backtrack", "from", from.String(), "to", to.String())
		}),
	)
	rep.Exploration = res
	if res != nil {
		rep.Visited = res.Visited
	}
	if err != nil {
		log.Error("mission.mapping.failed", "err", err)
		return rep, fmt.Errorf("solver: mapping: %w", err)
	}
	log.Info("mission.mapping.done",
		"cells", rep.Graph.CellCount(),
		"passages", rep.Graph.EdgeCount(),
		"moves", res.Moves,
		"exit_seen", res.ExitFound,
	)
	fmt.Fprintln(out, "Explored maze:")
	fmt.Fprintln(out, render.String(rep.Graph, rep.Visited, nil, theme))

	// planning
	route, err := bfs.ShortestPath(rep.Graph, bfs.WithContext(ctx))
	if err != nil {
		if errors.Is(err, bfs.ErrNoPath) {
			log.Warn("mission.planning.no_path", "err", err)
			fmt.Fprintln(out, "No path from start to exit.")
			return rep, fmt.Errorf("%w: %w", ErrExitUnreachable, err)
		}
		return rep, fmt.Errorf("solver: planning: %w", err)
	}
	rep.Route = route
	log.Info("mission.planning.done", "moves", route.Steps())
	fmt.Fprintf(out, "Shortest path (%d moves): %s\n", route.Steps(), route)
	fmt.Fprintln(out, render.String(rep.Graph, rep.Visited, route, theme))

	// traversal
	tr, err := traverse.New(bot, traverse.WithOnStep(func(from, to core.Cell, d core.Direction) {
		log.Debug("mission.traverse.step", "from", from.String(), "to", to.String(), "dir", d.String())
	}))
	if err != nil {
		return rep, err
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	if rep.Outbound, err = tr.Outbound(route); err != nil {
		log.Error("mission.outbound.failed", "err", err)
		return rep, fmt.Errorf("solver: outbound: %w", err)
	}
	log.Info("mission.outbound.done", "moves", rep.Outbound)
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	if rep.Return, err = tr.Return(route); err != nil {
		log.Error("mission.return.failed", "err", err)
		return rep, fmt.Errorf("solver: return: %w", err)
	}
	log.Info("mission.complete", "outbound", rep.Outbound, "return", rep.Return)
	fmt.Fprintln(out, CompleteMessage)

	return rep, nil
}
