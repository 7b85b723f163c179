// Package mazerunner is a maze-solving robot controller.
//
// A robot placed on the start cell of an unknown 4-connected grid maze
// maps it with a depth-first explorer, plans the fewest-move route to the
// exit with breadth-first search, drives the route out and back home, and
// prints the map with the route overlaid.
//
// Packages:
//
//	core/     Cell, Direction, Path and the undirected maze Graph
//	boundary/ rules for openings in the outer wall the robot must not take
//	layout/   validated maze descriptions (YAML), the embedded demo maze
//	robot/    the Robot capability, a layout-backed Simulator, logging decorator
//	dfs/      Explore: stack-based mapping by physical movement
//	bfs/      Search and ShortestPath over a mapped Graph
//	traverse/ drive a Path outbound and back
//	render/   colored-glyph rendering with Blocks and ASCII themes
//	solver/   Mission: the whole run, end to end
//
// Quick example (a 2×2 maze, walls shown as #):
//
//	#####
//	#S..#
//	###.#
//	#?#E#
//	#####
//
// Run the demo maze:
//
//	go run github.com/katalvlaran/mazerunner/cmd/mazerunner --theme ascii
package mazerunner
