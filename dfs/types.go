// Package dfs defines options, direction orders and results for maze
// exploration.
package dfs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazerunner/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Explore.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrRobotNil is returned when no robot is supplied.
	ErrRobotNil = errors.New("dfs: robot is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrCellLimit is returned when exploration visits more cells than
	// allowed by WithMaxCells.
	ErrCellLimit = errors.New("dfs: cell limit exceeded")
)

// Order selects the sequence in which directions are tried at each cell.
type Order int

const (
	// RelativeOrder tries forward, left, right, then back relative to the
	// heading the cell was entered with.
	RelativeOrder Order = iota
	// FixedOrder tries North, East, South, West at every cell.
	FixedOrder
)

func (o Order) String() string {
	switch o {
	case RelativeOrder:
		return "relative"
	case FixedOrder:
		return "fixed"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// ParseOrder maps "relative" or "fixed" to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "relative", "":
		return RelativeOrder, nil
	case "fixed":
		return FixedOrder, nil
	default:
		return 0, fmt.Errorf("%w: unknown order %q", ErrOptionViolation, s)
	}
}

// directions returns a fresh slice of the directions to try at a cell
// entered while facing heading.
func (o Order) directions(heading core.Direction) []core.Direction {
	if o == FixedOrder {
		return []core.Direction{core.North, core.East, core.South, core.West}
	}

	return []core.Direction{heading, heading.Left(), heading.Right(), heading.Opposite()}
}

// Option configures Explore.
type Option func(*Options)

// Options holds the exploration parameters.
type Options struct {
	// Ctx is checked before every robot command; defaults to Background.
	Ctx context.Context

	// Order picks the direction sequence; default RelativeOrder.
	Order Order

	// Heading is the robot's facing on the start cell; default North.
	Heading core.Direction

	// OnVisit runs when a cell is first entered. Returning an error aborts.
	OnVisit func(c core.Cell) error

	// OnBacktrack runs after the robot has moved from a finished cell back
	// to the cell it was discovered from.
	OnBacktrack func(from, to core.Cell)

	// MaxCells, if > 0, caps the number of visited cells.
	MaxCells int

	err error
}

// DefaultOptions returns Background context, RelativeOrder, North heading,
// no hooks and no cell limit.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Order:       RelativeOrder,
		Heading:     core.North,
		OnVisit:     func(core.Cell) error { return nil },
		OnBacktrack: func(_, _ core.Cell) {},
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects the direction order.
func WithOrder(order Order) Option {
	return func(o *Options) {
		if order != RelativeOrder && order != FixedOrder {
			o.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, int(order))
			return
		}
		o.Order = order
	}
}

// WithHeading sets the initial heading on the start cell.
func WithHeading(d core.Direction) Option {
	return func(o *Options) {
		if !d.Valid() {
			o.err = fmt.Errorf("%w: heading %d", ErrOptionViolation, int(d))
			return
		}
		o.Heading = d
	}
}

// WithOnVisit installs a hook called when a cell is first entered.
func WithOnVisit(fn func(c core.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnBacktrack installs a hook called after each move back.
func WithOnBacktrack(fn func(from, to core.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBacktrack = fn
		}
	}
}

// WithMaxCells caps the number of cells exploration may visit.
//
//	n > 0: limit to n cells
//	n == 0: no limit
//	n < 0: ErrOptionViolation
func WithMaxCells(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCells cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCells = n
	}
}

// Result reports what exploration discovered and what it cost.
type Result struct {
	// Visited is the set of every cell the robot entered.
	Visited core.CellSet

	// Order lists cells in discovery order, start first.
	Order []core.Cell

	// Moves counts every robot move, forward and back.
	Moves int

	// Backtracks counts the moves back to a parent cell.
	Backtracks int

	// VoidsSkipped counts directions refused by a boundary rule.
	VoidsSkipped int

	// MaxDepth is the deepest frame stack reached (the start is depth 0).
	MaxDepth int

	// ExitFound is set when the robot's ExitSensor fired; ExitSeen holds
	// the first cell where it did.
	ExitFound bool
	ExitSeen  core.Cell
}
