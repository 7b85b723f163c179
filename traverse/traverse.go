// Package traverse drives a robot along a computed route: outbound from
// start to exit, then back home along the same cells in reverse.
//
// A route is converted to compass moves up front, so a malformed path is
// rejected with core.ErrNotAdjacent before the robot moves at all. The
// return leg issues the opposite of each outbound move in reverse order;
// the robot turns its logical heading 180 degrees instead of replanning.
package traverse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazerunner/core"
	"github.com/katalvlaran/mazerunner/robot"
)

// ErrRobotNil is returned by New when no robot is supplied.
var ErrRobotNil = errors.New("traverse: robot is nil")

// Option configures a Traverser.
type Option func(*Traverser)

// WithOnStep installs a hook called after every successful move.
func WithOnStep(fn func(from, to core.Cell, d core.Direction)) Option {
	return func(t *Traverser) {
		if fn != nil {
			t.onStep = fn
		}
	}
}

// Traverser issues move commands for a path.
type Traverser struct {
	robot  robot.Robot
	onStep func(from, to core.Cell, d core.Direction)
}

// New returns a Traverser driving r.
func New(r robot.Robot, opts ...Option) (*Traverser, error) {
	if r == nil {
		return nil, ErrRobotNil
	}
	t := &Traverser{robot: r, onStep: func(_, _ core.Cell, _ core.Direction) {}}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// Outbound drives from path[0] to the last cell and returns the number of
// moves made. The robot must stand on path[0].
func (t *Traverser) Outbound(path core.Path) (int, error) {
	dirs, err := path.Directions()
	if err != nil {
		return 0, err
	}

	return t.drive(path, dirs)
}

// Return drives from the last cell of path back to path[0], issuing the
// opposite of each outbound move in reverse order.
func (t *Traverser) Return(path core.Path) (int, error) {
	dirs, err := path.Directions()
	if err != nil {
		return 0, err
	}
	back := path.Reverse()
	rev := make([]core.Direction, len(dirs))
	for i, d := range dirs {
		rev[len(dirs)-1-i] = d.Opposite()
	}

	return t.drive(back, rev)
}

// Follow is Outbound for an arbitrary walk.
func (t *Traverser) Follow(path core.Path) (int, error) {
	return t.Outbound(path)
}

func (t *Traverser) drive(path core.Path, dirs []core.Direction) (int, error) {
	for i, d := range dirs {
		if err := t.robot.Move(d); err != nil {
			return i, fmt.Errorf("traverse: step %d %v -> %v: %w", i+1, path[i], path[i+1], err)
		}
		t.onStep(path[i], path[i+1], d)
	}

	return len(dirs), nil
}
