// Package graph defines the immutable adjacency-list Graph, its Builder,
// construction options, and sentinel errors.
//
// Errors:
//
//	ErrGraphNil      - graph pointer is nil.
//	ErrUnknownNode   - identifier was never registered nor referenced as a neighbor.
//	ErrDuplicateNode - the same identifier was added to a Builder twice.
package graph

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrGraphNil indicates a nil *Graph was queried.
	ErrGraphNil = errors.New("graph: graph is nil")

	// ErrUnknownNode indicates the identifier is not part of the graph.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrDuplicateNode indicates an identifier was registered twice.
	ErrDuplicateNode = errors.New("graph: duplicate node")
)

// Option configures a Builder before Build.
type Option func(*config)

type config struct {
	symmetric bool
}

// WithSymmetric mirrors every edge u→v as v→u when the graph is built.
// Mirrored neighbors are appended after a node's declared neighbors,
// in the order their source nodes were registered.
func WithSymmetric() Option {
	return func(c *config) { c.symmetric = true }
}

// Graph is an immutable adjacency list keyed by any comparable identifier.
//
// A node is known if it was registered with Builder.Add or appears in some
// neighbor list. Known nodes without an entry simply have no neighbors.
// Graph has no mutating methods, so a built value may be shared freely
// between goroutines.
type Graph[K comparable] struct {
	order     []K        // known nodes: registration order, then neighbor-only nodes
	adj       map[K][]K  // node → deduplicated ordered neighbors
	edgeCount int        // total directed edges after dedup (and mirroring)
	symmetric bool       // built with WithSymmetric
	declared  map[K]bool // nodes registered explicitly via Add
}
