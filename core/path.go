package core

import (
	"fmt"
	"strings"
)

// CellSet is a set of cells; the explorer uses it as its visited set.
type CellSet map[Cell]struct{}

// NewCellSet returns a set holding the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}

	return s
}

// Add inserts c and reports whether it was absent.
func (s CellSet) Add(c Cell) bool {
	if _, ok := s[c]; ok {
		return false
	}
	s[c] = struct{}{}

	return true
}

// Has reports membership; a nil set contains nothing.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of cells in the set.
func (s CellSet) Len() int { return len(s) }

// Sorted returns the members in row-major order.
func (s CellSet) Sorted() []Cell {
	out := make([]Cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	SortCells(out)

	return out
}

// Path is an ordered walk through the maze, first cell to last.
type Path []Cell

// Steps returns the number of moves the path takes (cells minus one).
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Reverse returns a new path visiting the same cells backwards.
func (p Path) Reverse() Path {
	out := make(Path, len(p))
	for i := range p {
		out[i] = p[len(p)-1-i]
	}

	return out
}

// Directions converts the path into the compass move for each hop.
// Returns ErrNotAdjacent at the first hop that is not a single grid step.
func (p Path) Directions() ([]Direction, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPath
	}
	out := make([]Direction, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		d, ok := p[i-1].DirectionTo(p[i])
		if !ok {
			return nil, fmt.Errorf("%w: %v -> %v", ErrNotAdjacent, p[i-1], p[i])
		}
		out = append(out, d)
	}

	return out, nil
}

// Validate checks that every hop of p is a passage recorded in g.
func (p Path) Validate(g *Graph) error {
	if _, err := p.Directions(); err != nil {
		return err
	}
	for i := 1; i < len(p); i++ {
		if !g.Connected(p[i-1], p[i]) {
			return fmt.Errorf("%w: %v -> %v", ErrBrokenPath, p[i-1], p[i])
		}
	}

	return nil
}

// String renders the path as "(r,c) -> (r,c) -> ...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}

	return strings.Join(parts, " -> ")
}
