// File: graph.go
// Role: Read-only queries over a built Graph.
// Determinism:
//   - Neighbors() returns declared order (mirrored edges appended last).
//   - Nodes() returns registration order, then neighbor-only nodes.
// Concurrency:
//   - No locks: a Graph is never mutated after Build.

package graph

import (
	"fmt"
	"slices"
)

// Has reports whether id is a known node. A nil graph knows nothing.
func (g *Graph[K]) Has(id K) bool {
	if g == nil {
		return false
	}
	_, ok := g.adj[id]

	return ok
}

// Neighbors returns the out-neighbors of id in declared order.
//
// Known nodes without an outgoing entry return an empty slice and nil error.
// The returned slice is a copy; callers may modify it.
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrUnknownNode: id was never registered nor referenced.
//
// Complexity: O(d) for the copy.
func (g *Graph[K]) Neighbors(id K) ([]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	list, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNode, id)
	}

	return slices.Clone(list), nil
}

// HasEdge reports whether to is an out-neighbor of from.
func (g *Graph[K]) HasEdge(from, to K) bool {
	if g == nil {
		return false
	}

	return slices.Contains(g.adj[from], to)
}

// Declared reports whether id was registered with its own entry, as opposed
// to appearing only inside other nodes' neighbor lists.
func (g *Graph[K]) Declared(id K) bool {
	if g == nil {
		return false
	}

	return g.declared[id]
}

// Nodes returns every known node in deterministic order.
func (g *Graph[K]) Nodes() []K {
	if g == nil {
		return nil
	}

	return slices.Clone(g.order)
}

// Len returns the number of known nodes.
func (g *Graph[K]) Len() int {
	if g == nil {
		return 0
	}

	return len(g.order)
}

// EdgeCount returns the number of directed edges, after deduplication and
// mirroring. A symmetric pair u↔v counts as two.
func (g *Graph[K]) EdgeCount() int {
	if g == nil {
		return 0
	}

	return g.edgeCount
}

// Symmetric reports whether the graph was built WithSymmetric.
func (g *Graph[K]) Symmetric() bool {
	return g != nil && g.symmetric
}

// Adjacency returns a deep copy of the adjacency list, including an empty
// entry for every neighbor-only node.
func (g *Graph[K]) Adjacency() map[K][]K {
	if g == nil {
		return nil
	}
	out := make(map[K][]K, len(g.adj))
	for id, list := range g.adj {
		out[id] = slices.Clone(list)
	}

	return out
}
