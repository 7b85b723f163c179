// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for core maze operations.
var (
	// ErrNotAdjacent indicates two cells that should be grid neighbors are not.
	ErrNotAdjacent = errors.New("core: cells are not adjacent")

	// ErrEmptyPath indicates a path without any cells.
	ErrEmptyPath = errors.New("core: path is empty")

	// ErrBrokenPath indicates a path hop that is not a passage in the graph.
	ErrBrokenPath = errors.New("core: path crosses a missing passage")

	// ErrInvalidDirection indicates a direction value or name outside N/E/S/W.
	ErrInvalidDirection = errors.New("core: invalid direction")
)

// Cell is a grid coordinate. Its identity is the (Row, Col) pair.
type Cell struct {
	Row int
	Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the neighboring cell one move away in direction d.
func (c Cell) Step(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// DirectionTo reports the direction leading from c to other.
// The boolean is false when other is not an orthogonal neighbor of c.
func (c Cell) DirectionTo(other Cell) (Direction, bool) {
	for _, d := range Directions {
		if c.Step(d) == other {
			return d, true
		}
	}

	return 0, false
}

// Adjacent reports whether a and b are distinct orthogonal neighbors.
func Adjacent(a, b Cell) bool {
	_, ok := a.DirectionTo(b)
	return ok
}

// Direction is a compass heading. Values run clockwise so that
// (d+1)%4 is a right turn and (d+3)%4 a left turn.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every Direction in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

// rowDelta and colDelta are indexed by Direction.
var (
	rowDelta = [4]int{-1, 0, 1, 0}
	colDelta = [4]int{0, 1, 0, -1}
)

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Delta returns the (row, col) offset of a single step in direction d.
func (d Direction) Delta() (int, int) {
	if !d.Valid() {
		return 0, 0
	}

	return rowDelta[d], colDelta[d]
}

// Opposite returns the direction turned 180 degrees.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Right returns the direction turned 90 degrees clockwise.
func (d Direction) Right() Direction { return (d + 1) % 4 }

// Left returns the direction turned 90 degrees counter-clockwise.
func (d Direction) Left() Direction { return (d + 3) % 4 }

// QuarterTurns returns the number of 90 degree turns needed to face to
// when currently facing d: 0, 1 or 2.
func (d Direction) QuarterTurns(to Direction) int {
	n := int((to - d + 4) % 4)
	if n == 3 {
		return 1
	}

	return n
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts full names or single letters, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}
