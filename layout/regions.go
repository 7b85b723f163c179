package layout

import "github.com/katalvlaran/mazerunner/core"

// Regions partitions the maze into groups of cells joined by passable
// moves. Regions are seeded in row-major order and each region lists its
// cells in discovery order, so the first region always holds (0,0).
// A maze the robot can fully map has exactly one region.
//
// Time:   O(Rows·Cols).
// Memory: O(Rows·Cols) for the seen set and output.
func (l *Layout) Regions() [][]core.Cell {
	seen := make(core.CellSet, l.Rows*l.Cols)
	var regions [][]core.Cell

	for _, seed := range l.Cells() {
		if !seen.Add(seed) {
			continue
		}
		region := []core.Cell{seed}
		for qi := 0; qi < len(region); qi++ {
			u := region[qi]
			for _, d := range core.Directions {
				if !l.Passable(u, d) {
					continue
				}
				if v := u.Step(d); seen.Add(v) {
					region = append(region, v)
				}
			}
		}
		regions = append(regions, region)
	}

	return regions
}

// Unreachable returns the cells no route from Start can reach, row-major.
func (l *Layout) Unreachable() []core.Cell {
	reach := l.Reachable()
	var out []core.Cell
	for _, c := range l.Cells() {
		if !reach.Has(c) {
			out = append(out, c)
		}
	}

	return out
}
