// SPDX-License-Identifier: MIT

package core

import (
	"sort"
	"sync"
)

// Graph is the maze map: every known Cell and the set of neighbors it can
// pass to. It is built incrementally while exploring and never shrinks.
//
// mu guards adjacency; start and exit are immutable after NewGraph.
type Graph struct {
	mu sync.RWMutex

	start Cell
	exit  Cell

	// adjacency[a][b] exists iff a and b are mutually passable.
	// A known cell with no passages maps to an empty set.
	adjacency map[Cell]map[Cell]struct{}
	edges     int
}

// NewGraph creates a graph whose start and exit are fixed for its lifetime.
// The start cell is registered immediately; the exit only once discovered.
// Complexity: O(1).
func NewGraph(start, exit Cell) *Graph {
	g := &Graph{
		start:     start,
		exit:      exit,
		adjacency: make(map[Cell]map[Cell]struct{}),
	}
	g.adjacency[start] = make(map[Cell]struct{}, 4)

	return g
}

// Start returns the designated start cell.
func (g *Graph) Start() Cell { return g.start }

// Exit returns the designated exit cell.
func (g *Graph) Exit() Cell { return g.exit }

// IsStart reports whether c is the start cell.
func (g *Graph) IsStart(c Cell) bool { return c == g.start }

// IsExit reports whether c is the exit cell.
func (g *Graph) IsExit(c Cell) bool { return c == g.exit }

// AddCell registers c if unseen. Calling it again is a no-op.
// Complexity: O(1).
func (g *Graph) AddCell(c Cell) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureLocked(c)
}

// ensureLocked registers c; caller must hold mu for writing.
func (g *Graph) ensureLocked(c Cell) map[Cell]struct{} {
	set, ok := g.adjacency[c]
	if !ok {
		set = make(map[Cell]struct{}, 4)
		g.adjacency[c] = set
	}

	return set
}

// Connect records that a and b are mutually passable, registering either
// cell if it is unknown. It returns true only when a new passage was added:
// duplicates, self-loops and non-adjacent pairs leave the graph unchanged.
// Complexity: O(1).
func (g *Graph) Connect(a, b Cell) bool {
	if !Adjacent(a, b) {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	na := g.ensureLocked(a)
	nb := g.ensureLocked(b)
	if _, dup := na[b]; dup {
		return false
	}
	na[b] = struct{}{}
	nb[a] = struct{}{}
	g.edges++

	return true
}

// HasCell reports whether c has been registered.
func (g *Graph) HasCell(c Cell) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[c]
	return ok
}

// Connected reports whether a passage between a and b is recorded.
func (g *Graph) Connected(a, b Cell) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[a][b]
	return ok
}

// Neighbors returns the passable neighbors of c in N, E, S, W order.
// An unknown cell yields an empty slice.
// Complexity: O(1).
func (g *Graph) Neighbors(c Cell) []Cell {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set := g.adjacency[c]
	out := make([]Cell, 0, len(set))
	var n Cell
	for _, d := range Directions {
		n = c.Step(d)
		if _, ok := set[n]; ok {
			out = append(out, n)
		}
	}

	return out
}

// Cells returns every known cell in row-major order.
// Complexity: O(V log V).
func (g *Graph) Cells() []Cell {
	g.mu.RLock()
	out := make([]Cell, 0, len(g.adjacency))
	for c := range g.adjacency {
		out = append(out, c)
	}
	g.mu.RUnlock()

	SortCells(out)
	return out
}

// CellCount returns the number of known cells.
func (g *Graph) CellCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of distinct passages.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Bounds returns the smallest and largest row and column over all known
// cells. ok is false for a graph with no cells.
func (g *Graph) Bounds() (minCell, maxCell Cell, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for c := range g.adjacency {
		if !ok {
			minCell, maxCell, ok = c, c, true
			continue
		}
		minCell.Row = min(minCell.Row, c.Row)
		minCell.Col = min(minCell.Col, c.Col)
		maxCell.Row = max(maxCell.Row, c.Row)
		maxCell.Col = max(maxCell.Col, c.Col)
	}

	return minCell, maxCell, ok
}

// SortCells orders cells in place, row-major.
func SortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
}
