// Package bfs provides breadth-first search over a read-only graph,
// returning unweighted shortest paths, distances, parent links and visit order.
package bfs

import (
	"context"
	"fmt"
	"reflect"

	"github.com/katalvlaran/socialpath/graph"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[K comparable] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state for a single call.
// Nothing in it escapes the call except the finished Result.
type walker[K comparable] struct {
	graph   Graph[K]
	opts    Options
	ctx     context.Context
	queue   []queueItem[K]
	head    int
	visited map[K]bool
	depth   map[K]int
	parent  map[K]K
	order   []K
}

func newWalker[K comparable](g Graph[K], opts Options) *walker[K] {
	return &walker[K]{
		graph:   g,
		opts:    opts,
		ctx:     opts.Ctx,
		visited: make(map[K]bool),
		depth:   make(map[K]int),
		parent:  make(map[K]K),
	}
}

// Search runs a full breadth-first traversal from start and returns the
// visit order, depths and parent links of every reachable vertex.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - graph.ErrUnknownNode if start is not in g.
//   - ErrOptionViolation for bad options.
//   - ErrNeighbors if the graph fails a neighbor lookup.
//   - ctx.Err() on cancellation.
func Search[K comparable](g Graph[K], start K, opts ...Option) (*Result[K], error) {
	w, err := prepare(g, start, opts)
	if err != nil {
		return nil, err
	}
	if _, err = w.run(func(K) bool { return false }); err != nil {
		return nil, err
	}

	return &Result[K]{
		Start:  start,
		Order:  w.order,
		Depth:  w.depth,
		Parent: w.parent,
	}, nil
}

// prepare validates input and seeds a walker with start.
func prepare[K comparable](g Graph[K], start K, opts []Option) (*walker[K], error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.Has(start) {
		return nil, fmt.Errorf("bfs: start %v: %w", start, graph.ErrUnknownNode)
	}

	w := newWalker(g, o)
	w.enqueue(start, 0)

	return w, nil
}

// isNil reports whether g is a nil interface or wraps a nil pointer,
// such as a (*graph.Graph[K])(nil).
func isNil[K comparable](g Graph[K]) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// enqueue marks id visited at depth d and appends it to the frontier.
func (w *walker[K]) enqueue(id K, d int) {
	w.visited[id] = true
	w.depth[id] = d
	w.queue = append(w.queue, queueItem[K]{id: id, depth: d})
}

// run processes the frontier until it empties, stop reports true for a
// dequeued vertex, or an error occurs. It returns whether stop fired.
func (w *walker[K]) run(stop func(K) bool) (bool, error) {
	for w.head < len(w.queue) {
		// cancellation check (once per dequeued vertex)
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		w.order = append(w.order, item.id)
		if stop(item.id) {
			return true, nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return false, err
		}
	}

	return false, nil
}

// enqueueNeighbors enqueues each unseen neighbor of item within MaxDepth,
// in the order the graph returns them.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %w", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		w.parent[nbr] = item.id
		w.enqueue(nbr, nextDepth)
	}

	return nil
}
