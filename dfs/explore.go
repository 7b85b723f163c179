package dfs

import (
	"fmt"

	"github.com/katalvlaran/mazerunner/boundary"
	"github.com/katalvlaran/mazerunner/core"
	"github.com/katalvlaran/mazerunner/robot"
)

// frame is one level of the exploration stack.
type frame struct {
	cell    core.Cell
	entry   core.Direction   // direction moved to enter cell
	root    bool             // the start cell has no way back
	pending []core.Direction // directions not tried yet
}

// explorer encapsulates mutable exploration state.
type explorer struct {
	graph  *core.Graph
	robot  robot.Robot
	sensor robot.ExitSensor // nil when the robot cannot see the exit
	rules  *boundary.Rules
	opts   Options
	stack  []frame
	res    *Result
}

// Explore maps the maze reachable from g.Start() into g by driving r.
// r must stand on g.Start() when called; on success it stands there again.
// rules may be nil when the maze has no boundary voids.
// On error the partial Result is returned alongside it.
func Explore(g *core.Graph, r robot.Robot, rules *boundary.Rules, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if r == nil {
		return nil, ErrRobotNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	e := &explorer{
		graph: g,
		robot: r,
		rules: rules,
		opts:  o,
		res: &Result{
			Visited: make(core.CellSet),
			Order:   make([]core.Cell, 0, 16),
		},
	}
	if s, ok := r.(robot.ExitSensor); ok {
		e.sensor = s
	}

	return e.res, e.run()
}

// run drives the frame stack until the start frame is exhausted.
func (e *explorer) run() error {
	start := e.graph.Start()
	if err := e.visit(start); err != nil {
		return err
	}
	e.stack = append(e.stack, frame{
		cell:    start,
		entry:   e.opts.Heading,
		root:    true,
		pending: e.opts.Order.directions(e.opts.Heading),
	})

	for len(e.stack) > 0 {
		select {
		case <-e.opts.Ctx.Done():
			return e.opts.Ctx.Err()
		default:
		}

		top := &e.stack[len(e.stack)-1]
		if len(top.pending) == 0 {
			if err := e.retreat(); err != nil {
				return err
			}
			continue
		}
		d := top.pending[0]
		top.pending = top.pending[1:]
		if err := e.try(top.cell, d); err != nil {
			return err
		}
	}

	return nil
}

// try handles direction d from cur: skip voids and walls, record the
// passage, and descend into the neighbor if it is new.
func (e *explorer) try(cur core.Cell, d core.Direction) error {
	if e.rules.Blocked(cur, d) {
		e.res.VoidsSkipped++
		return nil
	}
	wall, err := e.robot.WallPresent(d)
	if err != nil {
		return fmt.Errorf("dfs: sensing %s at %v: %w", d, cur, err)
	}
	if wall {
		return nil
	}

	next := cur.Step(d)
	e.graph.Connect(cur, next)
	if e.res.Visited.Has(next) {
		return nil
	}
	if e.opts.MaxCells > 0 && e.res.Visited.Len() >= e.opts.MaxCells {
		return fmt.Errorf("%w: %d cells", ErrCellLimit, e.opts.MaxCells)
	}

	if err = e.robot.Move(d); err != nil {
		return fmt.Errorf("dfs: moving %s from %v: %w", d, cur, err)
	}
	e.res.Moves++
	if err = e.visit(next); err != nil {
		return err
	}
	e.stack = append(e.stack, frame{
		cell:    next,
		entry:   d,
		pending: e.opts.Order.directions(d),
	})
	e.res.MaxDepth = max(e.res.MaxDepth, len(e.stack)-1)

	return nil
}

// retreat pops the finished top frame and drives the robot back to the
// cell it came from.
func (e *explorer) retreat() error {
	done := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	if done.root {
		return nil
	}

	back := done.entry.Opposite()
	parent := done.cell.Step(back)
	if err := e.robot.Move(back); err != nil {
		return fmt.Errorf("dfs: backtracking %v -> %v: %w", done.cell, parent, err)
	}
	e.res.Moves++
	e.res.Backtracks++
	e.opts.OnBacktrack(done.cell, parent)

	return nil
}

// visit marks c as discovered and runs the exit sensor and OnVisit hook.
func (e *explorer) visit(c core.Cell) error {
	e.res.Visited.Add(c)
	e.res.Order = append(e.res.Order, c)
	e.graph.AddCell(c)

	if e.sensor != nil && !e.res.ExitFound && e.sensor.AtExit() {
		e.res.ExitFound = true
		e.res.ExitSeen = c
	}
	if err := e.opts.OnVisit(c); err != nil {
		return fmt.Errorf("dfs: OnVisit hook for %v: %w", c, err)
	}

	return nil
}
