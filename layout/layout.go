package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazerunner/boundary"
	"github.com/katalvlaran/mazerunner/core"
)

// Sentinel errors for layout construction.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("layout: grid must have at least one row and one column")
	// ErrNonRectangular indicates grid lines of differing lengths.
	ErrNonRectangular = errors.New("layout: all grid lines must have the same length")
	// ErrBadDimensions indicates a grid that is not (2R+1)x(2C+1).
	ErrBadDimensions = errors.New("layout: grid must be (2*rows+1) by (2*cols+1) characters")
	// ErrWalledCell indicates a cell center drawn as a wall.
	ErrWalledCell = errors.New("layout: cell center is a wall")
	// ErrCellOutOfBounds indicates a start or exit outside the maze.
	ErrCellOutOfBounds = errors.New("layout: cell outside maze")
	// ErrUncoveredGap indicates an outer gap with no void rule.
	ErrUncoveredGap = errors.New("layout: outer gap not covered by a void rule")
)

// WallGlyph marks a wall in the text grid.
const WallGlyph = '#'

// Layout is an immutable maze description.
type Layout struct {
	Name  string
	Rows  int
	Cols  int
	Start core.Cell
	Exit  core.Cell
	Voids *boundary.Rules

	// wall[y][x] covers the full (2*Rows+1)x(2*Cols+1) text grid.
	wall [][]bool
}

// New validates grid and the cell markers and returns a Layout.
// The grid lines are copied; later changes to the caller's slice have no
// effect. Complexity: O(Rows×Cols).
func New(name string, grid []string, start, exit core.Cell, voids []boundary.Rule) (*Layout, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(grid[0]))
	wall := make([][]bool, len(grid))
	for y, line := range grid {
		runes := []rune(line)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: line %d has %d characters, want %d", ErrNonRectangular, y, len(runes), w)
		}
		wall[y] = make([]bool, w)
		for x, r := range runes {
			wall[y][x] = r == WallGlyph
		}
	}
	h := len(grid)
	if h < 3 || w < 3 || h%2 == 0 || w%2 == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, h, w)
	}

	l := &Layout{
		Name:  name,
		Rows:  (h - 1) / 2,
		Cols:  (w - 1) / 2,
		Start: start,
		Exit:  exit,
		wall:  wall,
	}
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			if wall[2*r+1][2*c+1] {
				return nil, fmt.Errorf("%w: %v", ErrWalledCell, core.Cell{Row: r, Col: c})
			}
		}
	}
	if !l.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrCellOutOfBounds, start)
	}
	if !l.InBounds(exit) {
		return nil, fmt.Errorf("%w: exit %v", ErrCellOutOfBounds, exit)
	}

	rules, err := boundary.NewRules(voids...)
	if err != nil {
		return nil, err
	}
	if err = rules.Validate(l.InBounds); err != nil {
		return nil, err
	}
	l.Voids = rules
	if err = l.checkGaps(); err != nil {
		return nil, err
	}

	return l, nil
}

// checkGaps ensures every opening in the outer ring has a void rule.
func (l *Layout) checkGaps() error {
	for _, c := range l.Cells() {
		for _, d := range core.Directions {
			if l.InBounds(c.Step(d)) || !l.Open(c, d) {
				continue
			}
			if !l.Voids.Blocked(c, d) {
				return fmt.Errorf("%w: %v %s", ErrUncoveredGap, c, d)
			}
		}
	}

	return nil
}

// InBounds reports whether c lies inside the maze.
// Complexity: O(1).
func (l *Layout) InBounds(c core.Cell) bool {
	return c.Row >= 0 && c.Row < l.Rows && c.Col >= 0 && c.Col < l.Cols
}

// Open reports whether no wall separates c from its neighbor in direction d.
// Outer gaps count as open; use Passable to also honor void rules.
// Cells outside the maze are never open.
func (l *Layout) Open(c core.Cell, d core.Direction) bool {
	if !l.InBounds(c) || !d.Valid() {
		return false
	}
	dr, dc := d.Delta()

	return !l.wall[2*c.Row+1+dr][2*c.Col+1+dc]
}

// Passable reports whether a robot may legally move from c in direction d:
// open, not a void, and landing inside the maze.
func (l *Layout) Passable(c core.Cell, d core.Direction) bool {
	return l.Open(c, d) && !l.Voids.Blocked(c, d) && l.InBounds(c.Step(d))
}

// Cells returns every maze cell in row-major order.
func (l *Layout) Cells() []core.Cell {
	out := make([]core.Cell, 0, l.Rows*l.Cols)
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			out = append(out, core.Cell{Row: r, Col: c})
		}
	}

	return out
}

// Reachable flood-fills from Start over passable edges.
// Complexity: O(Rows×Cols).
func (l *Layout) Reachable() core.CellSet {
	seen := core.NewCellSet(l.Start)
	queue := []core.Cell{l.Start}
	var cur core.Cell
	for len(queue) > 0 {
		cur, queue = queue[0], queue[1:]
		for _, d := range core.Directions {
			if !l.Passable(cur, d) {
				continue
			}
			if n := cur.Step(d); seen.Add(n) {
				queue = append(queue, n)
			}
		}
	}

	return seen
}

// ReachableGraph builds the complete graph an explorer should discover:
// every reachable cell with all of its passable edges.
func (l *Layout) ReachableGraph() *core.Graph {
	g := core.NewGraph(l.Start, l.Exit)
	for _, c := range l.Reachable().Sorted() {
		g.AddCell(c)
		for _, d := range core.Directions {
			if l.Passable(c, d) {
				g.Connect(c, c.Step(d))
			}
		}
	}

	return g
}

// String returns the text grid, one line per row.
func (l *Layout) String() string {
	var b strings.Builder
	for y, row := range l.wall {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, isWall := range row {
			if isWall {
				b.WriteRune(WallGlyph)
			} else {
				b.WriteByte('.')
			}
		}
	}

	return b.String()
}
