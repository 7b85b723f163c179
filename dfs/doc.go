// Package dfs maps an unknown maze by depth-first exploration with a live
// robot, filling a core.Graph with every cell reachable from the start.
//
// What:
//
//   - Explore(g, r, rules, opts...) walks the robot from g.Start(). At each
//     cell it marks the cell visited, then tries the four directions in the
//     configured order. A direction is skipped when a boundary rule blocks
//     it or the robot senses a wall. Every remaining direction is recorded
//     as a passage, including ones leading to cells already visited, so
//     loops in the maze end up in the graph. Unvisited neighbors are entered
//     and explored first; once a cell has no directions left the robot
//     drives back through the way it came in.
//   - The recursion is an explicit stack of frames (cell, directions left,
//     entry direction), so deep mazes cannot overflow the call stack and the
//     physical move back is a visible step rather than an unwinding detail.
//   - On success the robot stands on the start cell again.
//
// Direction order:
//
//   - RelativeOrder (default): forward, left, right, back, relative to the
//     heading the robot entered the cell with. This keeps the robot turning
//     as little as possible. The start cell uses WithHeading (North).
//   - FixedOrder: North, East, South, West everywhere.
//
// Complexity:
//
//   - Time:   O(V) robot moves (each cell entered once, left once) and at
//     most 4V wall queries.
//   - Memory: O(V) for the visited set and the frame stack.
//
// Options:
//
//   - WithContext(ctx)       cancel between robot commands.
//   - WithOrder(o)           choose RelativeOrder or FixedOrder.
//   - WithHeading(d)         initial heading for RelativeOrder.
//   - WithOnVisit(fn)        hook on first arrival at a cell; error aborts.
//   - WithOnBacktrack(fn)    hook after each move back to a parent cell.
//   - WithMaxCells(n)        abort with ErrCellLimit beyond n visited cells.
//
// Errors:
//
//   - ErrGraphNil, ErrRobotNil      nil inputs.
//   - ErrOptionViolation            invalid option value.
//   - ErrCellLimit                  WithMaxCells exceeded.
//   - wrapped robot errors          any Move or WallPresent failure.
//   - context errors, hook errors.
package dfs
