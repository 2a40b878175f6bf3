package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/socialpath/bfs"
	"github.com/katalvlaran/socialpath/graph"
	"github.com/katalvlaran/socialpath/graphfile"
	"github.com/katalvlaran/socialpath/pathcache"
)

// pathResult is the --json shape of the path command.
type pathResult struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Path []string `json:"path"`
	Hops int      `json:"hops"`
}

// =============================================================================
// PATH
// =============================================================================

func newPathCmd(a *app) *cobra.Command {
	var (
		asJSON   bool
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print the shortest path between two people",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := args[0], args[1]
			path, err := bfs.FindPath(a.graph, from, to,
				bfs.WithContext(cmd.Context()),
				bfs.WithMaxDepth(maxDepth),
			)
			if err != nil {
				a.log.Debug("path search failed", "from", from, "to", to, "error", err)
				return err
			}
			a.log.Debug("path found", "from", from, "to", to, "hops", len(path)-1)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				return enc.Encode(pathResult{From: from, To: to, Path: path, Hops: len(path) - 1})
			}
			_, err = fmt.Fprintf(out, "%s (%d hops)\n", strings.Join(path, " -> "), len(path)-1)

			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "give up beyond this many hops (0 = no limit)")

	return cmd
}

// =============================================================================
// WALK
// =============================================================================

func newWalkCmd(a *app) *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "walk ROOT",
		Short: "List everyone reachable from ROOT in breadth-first order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxDepth < 0 {
				return fmt.Errorf("%w: --max-depth cannot be negative (%d)", bfs.ErrOptionViolation, maxDepth)
			}
			root := args[0]
			if !a.graph.Has(root) {
				return fmt.Errorf("walk %s: %w", root, graph.ErrUnknownNode)
			}

			out := cmd.OutOrStdout()
			count := 0
			for id, depth := range bfs.Traverse(a.graph, root) {
				if maxDepth > 0 && depth > maxDepth {
					break
				}
				if _, err := fmt.Fprintf(out, "%d\t%s\n", depth, id); err != nil {
					return err
				}
				count++
			}
			a.log.Debug("walk finished", "root", root, "visited", count)

			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop after this depth (0 = no limit)")

	return cmd
}

// =============================================================================
// MATRIX
// =============================================================================

func newMatrixCmd(a *app) *cobra.Command {
	var (
		workers   int
		cacheSize int
	)
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the hop count between every pair of people",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if workers < 1 {
				return fmt.Errorf("--workers must be at least 1, got %d", workers)
			}
			nodes := a.graph.Nodes()
			if cacheSize <= 0 {
				cacheSize = len(nodes)*len(nodes) + 1
			}
			finder, err := pathcache.New[string](a.graph, cacheSize)
			if err != nil {
				return err
			}

			hops := make([][]int, len(nodes))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(workers)
			for i, from := range nodes {
				hops[i] = make([]int, len(nodes))
				g.Go(func() error {
					for j, to := range nodes {
						if err := ctx.Err(); err != nil {
							return err
						}
						h, err := finder.Hops(from, to)
						if err != nil && !errors.Is(err, bfs.ErrNotFound) {
							return err
						}
						hops[i][j] = h
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			st := finder.Stats()
			a.log.Debug("matrix computed", "nodes", len(nodes), "workers", workers,
				"cache_hits", st.Hits, "cache_misses", st.Misses)

			return writeMatrix(cmd, nodes, hops)
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 4, "number of rows computed concurrently")
	cmd.Flags().IntVar(&cacheSize, "cache-size", 0, "path cache entries (0 = one per pair)")

	return cmd
}

// writeMatrix prints an aligned table; unreachable cells show "-".
func writeMatrix(cmd *cobra.Command, nodes []string, hops [][]int) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, n := range nodes {
		fmt.Fprintf(tw, "%s\t", n)
	}
	fmt.Fprintln(tw)
	for i, from := range nodes {
		fmt.Fprintf(tw, "%s\t", from)
		for _, h := range hops[i] {
			cell := "-"
			if h >= 0 {
				cell = strconv.Itoa(h)
			}
			fmt.Fprintf(tw, "%s\t", cell)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// =============================================================================
// EXPORT
// =============================================================================

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the active graph as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return graphfile.Encode(cmd.OutOrStdout(), a.graph)
		},
	}
}
