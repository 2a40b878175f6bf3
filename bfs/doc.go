// Package bfs provides breadth-first search over any graph exposing
// Has(id) and Neighbors(id), returning unweighted shortest paths.
//
// What
//
//   - FindPath(g, start, target): the shortest path as a slice of vertices,
//     stopping as soon as target is dequeued.
//   - Search(g, start): a full traversal returning a Result with
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//     and Result.PathTo(dest) for any number of later path queries.
//   - Traverse(g, root): a lazy iter.Seq2 of (vertex, depth).
//
// Algorithm
//
//	frontier ← [start]; visited ← {start}
//	while frontier not empty:
//	    current ← dequeue
//	    if current == target: walk Parent from target to start, reverse, return
//	    for nbr in Neighbors(current):
//	        if nbr ∉ visited: visited += nbr; Parent[nbr] = current; enqueue nbr
//	return ErrNotFound
//
// Determinism
//
//	Vertices are enqueued in the order the graph returns neighbors, so among
//	equally short paths the one using earlier-listed neighbors wins. Every call
//	owns its frontier, visited set and parent map; concurrent calls on the same
//	immutable graph do not interfere.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	path, err := bfs.FindPath(g, "Jayden", "Adam")
//	switch {
//	case errors.Is(err, bfs.ErrNotFound):
//	    // unreachable
//	case errors.Is(err, graph.ErrUnknownNode):
//	    // start or target not in g
//	}
//
//	res, err := bfs.Search(g, "Min", bfs.WithMaxDepth(2), bfs.WithContext(ctx))
//
// Errors
//
//   - ErrGraphNil            if g is nil, including a nil *graph.Graph.
//   - graph.ErrUnknownNode   if start or target is not in g.
//   - ErrNotFound            if no path exists.
//   - ErrOptionViolation     for invalid options (e.g. negative MaxDepth).
//   - ErrNeighbors           if the graph fails a neighbor lookup.
//   - ctx.Err()              on cancellation.
package bfs
