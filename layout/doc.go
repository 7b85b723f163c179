// Package layout describes a physical maze for the robot simulator: its
// wall grid, start and exit cells, and the boundary voids that lead off the
// maze surface.
//
// What:
//
//   - A maze of R rows and C columns is drawn as (2R+1) lines of (2C+1)
//     characters. Cell centers sit at odd/odd positions, the characters
//     between them are passages, '#' is a wall and anything else is open.
//   - Gaps in the outer ring are legal but each one must be covered by a
//     void rule, otherwise an explorer would drive off the table.
//   - Layouts are read from YAML files (Load, Decode) or the embedded demo
//     maze (Default).
//
// Why:
//
//   - The simulator needs ground truth to answer wall queries.
//   - Tests need an oracle: Reachable and ReachableGraph give the exact
//     cell set and passages an explorer is expected to discover.
//
// File format:
//
//	name: demo
//	start: {row: 3, col: 0}
//	exit: {row: 0, col: 3}
//	voids:
//	  - {row: 3, col: 0, dir: south}
//	grid: |
//	  #######.#
//	  ...
//
// Errors:
//
//   - ErrEmptyGrid        grid has no lines or an empty first line.
//   - ErrNonRectangular   grid lines differ in length.
//   - ErrBadDimensions    grid size is not (2R+1)x(2C+1) with R,C >= 1.
//   - ErrWalledCell       a cell center is drawn as a wall.
//   - ErrCellOutOfBounds  start or exit lies outside the maze.
//   - ErrUncoveredGap     an outer gap has no matching void rule.
//   - ErrInvalidFile      the YAML document is malformed or incomplete.
package layout
