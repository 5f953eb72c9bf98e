package graphlet_test

import (
	"context"
	"runtime"
	"testing"

	"pgregory.net/rapid"

	"github.com/arkusai/memgraph/coarsen"
	"github.com/arkusai/memgraph/graph"
	"github.com/arkusai/memgraph/graphlet"
)

// TestExactCountsAreEdgePartitionInvariant checks spec.md §5's claim that
// partitioning the edge list (as the parallel 4-node enumerator does)
// cannot change the result: any random graph, enumerated once with the
// default worker count and once with a single worker (one partition),
// yields identical counts.
func TestExactCountsAreEdgePartitionInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(4, 30).Draw(t, "n")
		edgeAttempts := rapid.IntRange(0, n*n).Draw(t, "edgeAttempts")

		g := graph.New()
		for i := 0; i < n; i++ {
			g.AddNode(coarsen.NodeID(i))
		}
		for i := 0; i < edgeAttempts; i++ {
			u := coarsen.NodeID(rapid.IntRange(0, n-1).Draw(t, "u"))
			v := coarsen.NodeID(rapid.IntRange(0, n-1).Draw(t, "v"))
			if u != v {
				_ = g.AddEdge(u, v, 1)
			}
		}

		first, _, err := graphlet.Enumerate(context.Background(), g, graphlet.DefaultOptions())
		if err != nil {
			t.Fatalf("enumerate: %v", err)
		}
		defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(1)) // second run: one worker, one partition
		second, _, err := graphlet.Enumerate(context.Background(), g, graphlet.DefaultOptions())
		if err != nil {
			t.Fatalf("enumerate: %v", err)
		}

		if first.Total() != second.Total() {
			t.Fatalf("non-deterministic total: %v vs %v", first.Total(), second.Total())
		}
		for _, id := range []graphlet.ID{
			graphlet.G0, graphlet.G1, graphlet.G2, graphlet.G3, graphlet.G4,
			graphlet.G5, graphlet.G6, graphlet.G7, graphlet.G8,
		} {
			if first.Get(id) != second.Get(id) {
				t.Fatalf("graphlet %s differs between runs: %v vs %v", id, first.Get(id), second.Get(id))
			}
		}
	})
}
