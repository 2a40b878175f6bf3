// Package graph provides a small, immutable, generic adjacency-list graph.
//
// What
//
//   - Graph[K] maps a node identifier of any comparable type K to an ordered
//     list of neighbor identifiers.
//   - Builder[K] collects entries in order and validates them once in Build.
//   - FromMap builds from a plain map with sorted keys.
//
// Edge policy
//
//	Edges are directed and accepted exactly as declared. WithSymmetric()
//	mirrors every u→v as v→u; mirrored neighbors come after declared ones.
//	Duplicate entries inside one neighbor list collapse to the first occurrence.
//
// Unknown nodes
//
//	A node is known if it has its own entry or appears in any neighbor list.
//	Neighbors(id) of a known node with no entry returns no neighbors and a nil
//	error. Identifiers never seen fail with ErrUnknownNode.
//
// Determinism
//
//	Neighbors() preserves declared order, and Nodes() preserves registration
//	order, so traversals built on top of Graph are reproducible.
//
// Usage
//
//	g, err := graph.NewBuilder[string]().
//		Add("A", "B", "C").
//		Add("B", "A").
//		Build()
//	if err != nil {
//		// ErrDuplicateNode
//	}
//	nbrs, err := g.Neighbors("C") // [], nil: C is referenced by A
//	_, err = g.Neighbors("Z")     // ErrUnknownNode
package graph
