// Package solver runs one complete maze mission: map the maze with a
// depth-first explorer, find the shortest route with breadth-first
// search, drive it out to the exit and back home, and print the map and
// the route overlay along the way.
//
// A Mission is a plain struct; zero-valued optional fields fall back to
// sensible defaults (discarding logger, Blocks theme, relative order,
// output to io.Discard). Each Run gets a fresh run id that tags every
// log line it emits.
//
//	m := &solver.Mission{Robot: sim, Start: l.Start, Exit: l.Exit, Rules: l.Voids, Out: os.Stdout}
//	report, err := m.Run(ctx)
package solver
