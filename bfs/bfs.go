package bfs

import (
	"github.com/katalvlaran/mazerunner/core"
)

// queueItem pairs a cell with its distance from the source.
type queueItem struct {
	cell  core.Cell
	depth int
}

// walker encapsulates mutable search state.
type walker struct {
	graph  *core.Graph
	opts   Options
	target core.Cell
	queue  []queueItem
	res    *Result
}

// Search runs breadth-first search on g from `from`, stopping once `to`
// is dequeued. The partial Result is still useful when `to` is unreachable:
// it covers every cell reachable from `from`.
func Search(g *core.Graph, from, to core.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasCell(from) {
		return nil, ErrStartNotFound
	}

	n := g.CellCount()
	w := &walker{
		graph:  g,
		opts:   o,
		target: to,
		queue:  make([]queueItem, 0, n),
		res: &Result{
			Source: from,
			Order:  make([]core.Cell, 0, n),
			Depth:  make(map[core.Cell]int, n),
			Parent: make(map[core.Cell]core.Cell, n),
		},
	}
	w.res.Depth[from] = 0
	w.queue = append(w.queue, queueItem{cell: from})

	return w.res, w.loop()
}

// loop processes the queue until the target is dequeued, the queue empties
// or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.cell)
		w.opts.OnDequeue(item.cell, item.depth)
		if item.cell == w.target {
			return nil
		}

		for _, nbr := range w.graph.Neighbors(item.cell) {
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			w.res.Depth[nbr] = item.depth + 1
			w.res.Parent[nbr] = item.cell
			w.queue = append(w.queue, queueItem{cell: nbr, depth: item.depth + 1})
		}
	}

	return nil
}

// ShortestPath returns a fewest-move route from g.Start() to g.Exit(),
// or ErrNoPath when the exit is unreachable.
func ShortestPath(g *core.Graph, opts ...Option) (core.Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	res, err := Search(g, g.Start(), g.Exit(), opts...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(g.Exit())
}
