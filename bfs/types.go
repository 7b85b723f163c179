// Package bfs provides options, errors and results for maze route search.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazerunner/core"
)

// Sentinel errors for route search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the source cell is absent.
	ErrStartNotFound = errors.New("bfs: start cell not found")

	// ErrNoPath is returned when the target cannot be reached.
	ErrNoPath = errors.New("bfs: no path found")
)

// Option configures Search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for Search.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnDequeue is called immediately before a cell's neighbors are expanded.
	OnDequeue func(c core.Cell, depth int)
}

// DefaultOptions returns Background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnDequeue: func(core.Cell, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c core.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Order: cells in dequeue sequence.
//   - Depth: distance in moves from the source for every discovered cell.
//   - Parent: the cell each discovered cell was first reached from.
type Result struct {
	Source core.Cell
	Order  []core.Cell
	Depth  map[core.Cell]int
	Parent map[core.Cell]core.Cell
}

// PathTo reconstructs the route from the source to dest.
// Returns ErrNoPath if dest was not discovered.
func (r *Result) PathTo(dest core.Cell) (core.Path, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %v unreachable from %v", ErrNoPath, dest, r.Source)
	}
	path := make(core.Path, d+1)
	cur := dest
	for i := d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
