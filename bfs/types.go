// Package bfs provides tunable options, error definitions and result types
// for breadth-first search over a read-only graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNotFound is returned when the target cannot be reached from the start.
	ErrNotFound = errors.New("bfs: no path")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Graph is the read-only view BFS needs. *graph.Graph[K] satisfies it.
type Graph[K comparable] interface {
	// Has reports whether id is a node of the graph.
	Has(id K) bool
	// Neighbors returns the out-neighbors of id in a stable order.
	Neighbors(id K) ([]K, error)
}

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*Options)

// Options holds parameters to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result holds the outcome of a full traversal:
//   - Order: vertices in visit sequence.
//   - Depth: vertex → distance (in edges) from the start.
//   - Parent: vertex → predecessor in the BFS tree; the start has no entry.
type Result[K comparable] struct {
	Start  K
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// PathTo reconstructs the shortest path from the start vertex to dest.
// Returns ErrNotFound if dest was not reached or its parent chain does not
// lead back to the start.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %v is not reachable from %v", ErrNotFound, dest, r.Start)
	}

	return reconstruct(r.Parent, r.Start, dest, d)
}

// reconstruct walks parent links from dest back to start and reverses them.
// depth is a capacity hint. A chain longer than len(parent) links must
// contain a cycle.
func reconstruct[K comparable](parent map[K]K, start, dest K, depth int) ([]K, error) {
	path := make([]K, 0, depth+1)
	cur := dest
	for steps := 0; cur != start; steps++ {
		prev, ok := parent[cur]
		if !ok || steps >= len(parent) {
			return nil, fmt.Errorf("%w: parent chain from %v broken at %v", ErrNotFound, dest, cur)
		}
		path = append(path, cur)
		cur = prev
	}
	path = append(path, start)
	slices.Reverse(path)

	return path, nil
}
