package robot

import (
	"fmt"

	"github.com/katalvlaran/mazerunner/core"
	"github.com/katalvlaran/mazerunner/layout"
)

// Simulator is a Robot living on a layout.Layout. It starts on the layout's
// start cell facing North and keeps odometry: moves made, quarter turns
// taken (the robot turns in place to face each move) and wall queries.
//
// The simulator reports outer gaps as "no wall" exactly like a distance
// sensor would. Driving through one drops the robot off the maze.
type Simulator struct {
	maze    *layout.Layout
	pos     core.Cell
	heading core.Direction
	fallen  bool

	moves   int
	turns   int
	queries int
}

// NewSimulator places a robot on the start cell of l, facing North.
func NewSimulator(l *layout.Layout) *Simulator {
	return &Simulator{maze: l, pos: l.Start, heading: core.North}
}

// Move turns toward d and drives one cell.
func (s *Simulator) Move(d core.Direction) error {
	if s.fallen {
		return ErrFellOff
	}
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	s.face(d)
	if !s.maze.Open(s.pos, d) {
		return fmt.Errorf("%w: %v heading %s", ErrWallCollision, s.pos, d)
	}
	next := s.pos.Step(d)
	if !s.maze.InBounds(next) {
		s.fallen = true
		return fmt.Errorf("%w: %v heading %s", ErrFellOff, s.pos, d)
	}
	s.pos = next
	s.moves++

	return nil
}

// WallPresent reports whether a wall blocks d from the current cell.
func (s *Simulator) WallPresent(d core.Direction) (bool, error) {
	if s.fallen {
		return false, ErrFellOff
	}
	if !d.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	s.queries++

	return !s.maze.Open(s.pos, d), nil
}

// AtExit reports whether the robot stands on the exit marker.
func (s *Simulator) AtExit() bool {
	return !s.fallen && s.pos == s.maze.Exit
}

func (s *Simulator) face(d core.Direction) {
	s.turns += s.heading.QuarterTurns(d)
	s.heading = d
}

// Position returns the current cell.
func (s *Simulator) Position() core.Cell { return s.pos }

// Heading returns the direction the robot faces.
func (s *Simulator) Heading() core.Direction { return s.heading }

// Fallen reports whether the robot has left the maze.
func (s *Simulator) Fallen() bool { return s.fallen }

// Odometry is a snapshot of the simulator counters.
type Odometry struct {
	Moves   int
	Turns   int
	Queries int
}

// Odometry returns the counters accumulated so far.
func (s *Simulator) Odometry() Odometry {
	return Odometry{Moves: s.moves, Turns: s.turns, Queries: s.queries}
}
