// Package pathcache memoizes shortest-path queries over an immutable graph.
//
// Because a built graph never changes, the answer for a (start, target) pair
// never changes either; Finder keeps the most recent answers in a fixed-size
// LRU so repeated queries (all-pairs tables, batch lookups) skip the search.
package pathcache

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/socialpath/bfs"
)

// ErrBadSize is returned by New for a non-positive cache size.
var ErrBadSize = errors.New("pathcache: size must be positive")

type pair[K comparable] struct {
	from, to K
}

// entry is either a path or a cached ErrNotFound.
type entry[K comparable] struct {
	path []K
	err  error
}

// Stats is a snapshot of cache effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// Finder answers FindPath queries through an LRU cache.
// It is safe for concurrent use.
type Finder[K comparable] struct {
	graph  bfs.Graph[K]
	cache  *lru.Cache[pair[K], entry[K]]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// New wraps g with a cache holding up to size results.
func New[K comparable](g bfs.Graph[K], size int) (*Finder[K], error) {
	if g == nil {
		return nil, bfs.ErrGraphNil
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	c, err := lru.New[pair[K], entry[K]](size)
	if err != nil {
		return nil, fmt.Errorf("pathcache: %w", err)
	}

	return &Finder[K]{graph: g, cache: c}, nil
}

// FindPath behaves like bfs.FindPath. Successful paths and ErrNotFound
// results are cached; any other error is returned without caching.
// The returned slice is a copy owned by the caller.
func (f *Finder[K]) FindPath(start, target K) ([]K, error) {
	key := pair[K]{from: start, to: target}
	if e, ok := f.cache.Get(key); ok {
		f.hits.Add(1)
		return slices.Clone(e.path), e.err
	}
	f.misses.Add(1)

	path, err := bfs.FindPath(f.graph, start, target)
	switch {
	case err == nil:
		f.cache.Add(key, entry[K]{path: slices.Clone(path)})
	case errors.Is(err, bfs.ErrNotFound):
		f.cache.Add(key, entry[K]{err: err})
	}

	return path, err
}

// Hops returns the number of edges on the shortest path, or -1 with
// ErrNotFound when target is unreachable.
func (f *Finder[K]) Hops(start, target K) (int, error) {
	path, err := f.FindPath(start, target)
	if err != nil {
		return -1, err
	}

	return len(path) - 1, nil
}

// Stats reports hit and miss counters and the current number of entries.
func (f *Finder[K]) Stats() Stats {
	return Stats{
		Hits:   f.hits.Load(),
		Misses: f.misses.Load(),
		Len:    f.cache.Len(),
	}
}

// Purge drops every cached result and resets the counters.
func (f *Finder[K]) Purge() {
	f.cache.Purge()
	f.hits.Store(0)
	f.misses.Store(0)
}
