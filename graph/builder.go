package graph

import (
	"cmp"
	"fmt"
	"slices"
)

// Builder accumulates node entries in order and produces an immutable Graph.
//
// Add is chainable; the first error encountered is recorded and returned by
// Build, in the same way invalid options are surfaced lazily.
type Builder[K comparable] struct {
	cfg     config
	keys    []K
	entries map[K][]K
	err     error
}

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder[K comparable](opts ...Option) *Builder[K] {
	b := &Builder[K]{entries: make(map[K][]K)}
	for _, opt := range opts {
		opt(&b.cfg)
	}

	return b
}

// Add registers id with its ordered out-neighbors.
// Registering the same id twice records ErrDuplicateNode.
func (b *Builder[K]) Add(id K, neighbors ...K) *Builder[K] {
	if b.err != nil {
		return b
	}
	if _, dup := b.entries[id]; dup {
		b.err = fmt.Errorf("%w: %v", ErrDuplicateNode, id)
		return b
	}
	b.keys = append(b.keys, id)
	b.entries[id] = slices.Clone(neighbors)

	return b
}

// Build validates the accumulated entries and returns the Graph.
//
// Steps:
//  1. Deduplicate each neighbor list, keeping first occurrences.
//  2. Collect neighbor-only nodes in discovery order.
//  3. Optionally mirror edges (WithSymmetric).
//
// Complexity: O(V + E).
func (b *Builder[K]) Build() (*Graph[K], error) {
	if b.err != nil {
		return nil, b.err
	}

	g := &Graph[K]{
		order:     make([]K, 0, len(b.keys)),
		adj:       make(map[K][]K, len(b.keys)),
		declared:  make(map[K]bool, len(b.keys)),
		symmetric: b.cfg.symmetric,
	}
	// seen[u] holds the neighbor set of u, used for dedup and mirroring.
	seen := make(map[K]map[K]struct{}, len(b.keys))

	for _, id := range b.keys {
		g.order = append(g.order, id)
		g.declared[id] = true
		set := make(map[K]struct{}, len(b.entries[id]))
		list := make([]K, 0, len(b.entries[id]))
		for _, nbr := range b.entries[id] {
			if _, ok := set[nbr]; ok {
				continue
			}
			set[nbr] = struct{}{}
			list = append(list, nbr)
		}
		g.adj[id] = list
		seen[id] = set
	}

	// neighbor-only nodes join the order after every declared key
	for _, id := range b.keys {
		for _, nbr := range g.adj[id] {
			if _, ok := g.adj[nbr]; ok {
				continue
			}
			g.order = append(g.order, nbr)
			g.adj[nbr] = nil
			seen[nbr] = make(map[K]struct{})
		}
	}

	if g.symmetric {
		// iterate a snapshot of declared lists so mirrors never cascade
		declared := make(map[K][]K, len(b.keys))
		for _, id := range b.keys {
			declared[id] = slices.Clone(g.adj[id])
		}
		for _, u := range b.keys {
			for _, v := range declared[u] {
				if _, ok := seen[v][u]; ok {
					continue
				}
				seen[v][u] = struct{}{}
				g.adj[v] = append(g.adj[v], u)
			}
		}
	}

	for _, list := range g.adj {
		g.edgeCount += len(list)
	}

	return g, nil
}

// FromMap builds a Graph from m, registering keys in ascending order so the
// result does not depend on map iteration order.
func FromMap[K cmp.Ordered](m map[K][]K, opts ...Option) (*Graph[K], error) {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	b := NewBuilder[K](opts...)
	for _, k := range keys {
		b.Add(k, m[k]...)
	}

	return b.Build()
}
