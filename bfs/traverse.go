package bfs

import "iter"

// Traverse lazily yields every vertex reachable from root together with its
// depth, in breadth-first order.
//
// Neighbors of a vertex are fetched only after the consumer accepts it, so
// breaking out of the loop early does no further work. Every range over the
// returned sequence starts a fresh traversal from root.
// A nil graph or an unknown root yields nothing; a neighbor lookup failure ends the sequence.
//
//	for id, depth := range bfs.Traverse(g, "Min") {
//		fmt.Println(depth, id)
//	}
func Traverse[K comparable](g Graph[K], root K) iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		if isNil(g) || !g.Has(root) {
			return
		}
		queue := []queueItem[K]{{id: root}}
		visited := map[K]bool{root: true}

		for head := 0; head < len(queue); head++ {
			item := queue[head]
			if !yield(item.id, item.depth) {
				return
			}
			neighbors, err := g.Neighbors(item.id)
			if err != nil {
				return
			}
			for _, nbr := range neighbors {
				if visited[nbr] {
					continue
				}
				visited[nbr] = true
				queue = append(queue, queueItem[K]{id: nbr, depth: item.depth + 1})
			}
		}
	}
}
