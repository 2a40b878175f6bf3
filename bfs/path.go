package bfs

import (
	"fmt"

	"github.com/katalvlaran/socialpath/graph"
)

// FindPath returns the shortest path (fewest edges) from start to target,
// inclusive of both endpoints.
//
// The search stops as soon as target is dequeued. Ties between equally short
// paths are broken by neighbor order: the first neighbor listed wins at every
// level. start == target yields [start].
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - graph.ErrUnknownNode if start or target is not in g.
//   - ErrNotFound if target is unreachable (or beyond WithMaxDepth).
//   - ErrOptionViolation, ErrNeighbors, ctx.Err() as for Search.
//
// Complexity: O(V + E) time, O(V) memory.
func FindPath[K comparable](g Graph[K], start, target K, opts ...Option) ([]K, error) {
	w, err := prepare(g, start, opts)
	if err != nil {
		return nil, err
	}
	if !g.Has(target) {
		return nil, fmt.Errorf("bfs: target %v: %w", target, graph.ErrUnknownNode)
	}

	found, err := w.run(func(id K) bool { return id == target })
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: from %v to %v", ErrNotFound, start, target)
	}

	return reconstruct(w.parent, start, target, w.depth[target])
}
