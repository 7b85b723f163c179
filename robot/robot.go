// Package robot defines the actuator/sensor capability the maze algorithms
// drive, plus a grid Simulator that implements it over a layout.Layout.
//
// The algorithms only ever see the Robot interface: one-cell moves in a
// compass direction and wall queries relative to the current cell. Anything
// that satisfies it (a simulator, a recorder, a real drivetrain adapter)
// can be explored, routed and driven home.
package robot

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/mazerunner/core"
)

var (
	// ErrWallCollision is returned when a move runs into a wall.
	ErrWallCollision = errors.New("robot: drove into a wall")
	// ErrFellOff is returned when a move leaves the maze surface, and by
	// every command issued after that.
	ErrFellOff = errors.New("robot: fell off the maze")
	// ErrInvalidDirection is returned for a direction outside N/E/S/W.
	ErrInvalidDirection = errors.New("robot: invalid direction")
)

// Robot moves one cell at a time and senses walls around its current cell.
// Calls are synchronous and assumed deterministic.
type Robot interface {
	// Move drives one cell in direction d.
	Move(d core.Direction) error
	// WallPresent reports whether a wall blocks direction d from the
	// current cell. An open gap at the maze edge reports false.
	WallPresent(d core.Direction) (bool, error)
}

// ExitSensor is implemented by robots that can recognize the exit marker
// beneath them.
type ExitSensor interface {
	AtExit() bool
}

// Logged wraps r so that every command is logged at debug level.
// The returned robot forwards AtExit when r is an ExitSensor.
func Logged(r Robot, log *slog.Logger) Robot {
	if log == nil {
		return r
	}
	lr := &loggedRobot{next: r, log: log}
	if s, ok := r.(ExitSensor); ok {
		return &loggedSensor{loggedRobot: lr, sensor: s}
	}

	return lr
}

type loggedRobot struct {
	next Robot
	log  *slog.Logger
}

func (l *loggedRobot) Move(d core.Direction) error {
	err := l.next.Move(d)
	if err != nil {
		l.log.Warn("robot.move.failed", "dir", d.String(), "err", err)
		return err
	}
	l.log.Debug("robot.move", "dir", d.String())

	return nil
}

func (l *loggedRobot) WallPresent(d core.Direction) (bool, error) {
	wall, err := l.next.WallPresent(d)
	l.log.Debug("robot.sense", "dir", d.String(), "wall", wall, "err", err)

	return wall, err
}

type loggedSensor struct {
	*loggedRobot
	sensor ExitSensor
}

func (l *loggedSensor) AtExit() bool {
	return l.sensor.AtExit()
}
