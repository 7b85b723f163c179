// Package render draws a mapped maze as a grid of colored glyphs.
//
// The picture for a maze spanning H rows and W columns is (2H+1) lines of
// (2W+1) glyphs: cells sit at odd/odd positions, the glyphs between two
// cells show whether a passage joins them, and everything else is wall.
// Cells the explorer visited are open, cells inside the bounding box that
// were never visited are unknown, and a route overlay marks its cells and
// the passages between consecutive hops. Start and exit markers are drawn
// last so they stay visible under the route.
//
// Rendering is a pure function of its inputs; nothing is mutated.
package render

import (
	"strings"

	"github.com/katalvlaran/mazerunner/core"
)

// canvas is the glyph grid with the coordinate transform for one render.
type canvas struct {
	origin core.Cell
	kinds  [][]Kind
}

// at maps a maze cell to its glyph position.
func (cv *canvas) at(c core.Cell) (int, int) {
	return 2*(c.Row-cv.origin.Row) + 1, 2*(c.Col-cv.origin.Col) + 1
}

// between maps the passage joining adjacent cells a and b.
func (cv *canvas) between(a, b core.Cell) (int, int) {
	ay, ax := cv.at(a)
	by, bx := cv.at(b)

	return (ay + by) / 2, (ax + bx) / 2
}

func (cv *canvas) inside(y, x int) bool {
	return y >= 0 && y < len(cv.kinds) && x >= 0 && x < len(cv.kinds[y])
}

func (cv *canvas) set(y, x int, k Kind) {
	if cv.inside(y, x) {
		cv.kinds[y][x] = k
	}
}

// Render draws g, the visited set and an optional route. It returns nil
// when there is nothing to draw.
// Complexity: O(H×W + |route|).
func Render(g *core.Graph, visited core.CellSet, route core.Path, theme Theme) []string {
	if g == nil {
		return nil
	}
	cv := layoutCanvas(g, visited)
	if cv == nil {
		return nil
	}

	for y := 1; y < len(cv.kinds); y += 2 {
		for x := 1; x < len(cv.kinds[y]); x += 2 {
			c := core.Cell{Row: cv.origin.Row + (y-1)/2, Col: cv.origin.Col + (x-1)/2}
			if visited.Has(c) {
				cv.kinds[y][x] = Open
			} else {
				cv.kinds[y][x] = Unknown
			}
		}
	}
	for _, c := range g.Cells() {
		for _, n := range g.Neighbors(c) {
			y, x := cv.between(c, n)
			cv.set(y, x, Open)
		}
	}
	for i, c := range route {
		y, x := cv.at(c)
		cv.set(y, x, Route)
		if i+1 < len(route) && core.Adjacent(c, route[i+1]) {
			y, x = cv.between(c, route[i+1])
			cv.set(y, x, Route)
		}
	}
	if g.HasCell(g.Start()) || visited.Has(g.Start()) {
		y, x := cv.at(g.Start())
		cv.set(y, x, Start)
	}
	if g.HasCell(g.Exit()) || visited.Has(g.Exit()) {
		y, x := cv.at(g.Exit())
		cv.set(y, x, Exit)
	}

	lines := make([]string, len(cv.kinds))
	var b strings.Builder
	for y, row := range cv.kinds {
		b.Reset()
		for _, k := range row {
			b.WriteString(theme.draw(k))
		}
		lines[y] = b.String()
	}

	return lines
}

// String joins Render's lines with newlines.
func String(g *core.Graph, visited core.CellSet, route core.Path, theme Theme) string {
	return strings.Join(Render(g, visited, route, theme), "\n")
}

// layoutCanvas sizes a wall-filled canvas to the bounding box of every
// cell the graph knows plus every visited cell.
func layoutCanvas(g *core.Graph, visited core.CellSet) *canvas {
	lo, hi, ok := g.Bounds()
	for c := range visited {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		lo.Row, lo.Col = min(lo.Row, c.Row), min(lo.Col, c.Col)
		hi.Row, hi.Col = max(hi.Row, c.Row), max(hi.Col, c.Col)
	}
	if !ok {
		return nil
	}

	h := 2*(hi.Row-lo.Row+1) + 1
	w := 2*(hi.Col-lo.Col+1) + 1
	kinds := make([][]Kind, h)
	for y := range kinds {
		kinds[y] = make([]Kind, w) // zero value is Wall
	}

	return &canvas{origin: lo, kinds: kinds}
}
