// Package socialpath is a small toolkit for answering "how do I get from
// one person to another?" over an in-memory who-knows-whom graph.
//
// What's inside:
//
//	graph/       immutable generic adjacency list, Builder, symmetric mode
//	bfs/         FindPath (shortest path), Search (full BFS tree), Traverse (lazy)
//	social/      the fourteen-person reference network
//	graphfile/   YAML load/save preserving node order
//	pathcache/   LRU-memoized path queries over a fixed graph
//	cmd/pathfind  command-line front end
//
// Quick example:
//
//	g := social.Network()
//	path, err := bfs.FindPath(g, "Jayden", "Adam")
//	// path == [Jayden Amelia Adam]
//
// Paths are unweighted: "shortest" means fewest hops. Among equally short
// paths the one through earlier-listed neighbors wins, so results are stable.
//
//	go get github.com/katalvlaran/socialpath
package socialpath
