package graphlet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkusai/memgraph/coarsen"
	"github.com/arkusai/memgraph/graph"
	"github.com/arkusai/memgraph/graphlet"
)

func complete(n int) *graph.Graph {
	g := graph.New()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = g.AddEdge(coarsen.NodeID(i), coarsen.NodeID(j), 1)
		}
	}

	return g
}

func path(n int) *graph.Graph {
	g := graph.New()
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(coarsen.NodeID(i), coarsen.NodeID(i+1), 1)
	}

	return g
}

func star(leaves int) *graph.Graph {
	g := graph.New()
	for i := 1; i <= leaves; i++ {
		_ = g.AddEdge(coarsen.NodeID(0), coarsen.NodeID(i), 1)
	}

	return g
}

// TestExactK4IsAllClique verifies the single most error-prone case spec.md
// flags: in a 4-clique every neighbor-pair of every vertex is itself an
// edge, so the *induced* wedge count (G1) is zero, not a raw per-vertex
// tally of 12 — see DESIGN.md's Open Question decisions for the full
// derivation of why 12 can only be a pre-correction, homomorphic quantity.
func TestExactK4IsAllClique(t *testing.T) {
	g := complete(4)
	counts, sampled, err := graphlet.Enumerate(context.Background(), g, graphlet.DefaultOptions())
	require.NoError(t, err)
	require.False(t, sampled)

	require.EqualValues(t, 6, counts.Get(graphlet.G0)) // 6 edges
	require.EqualValues(t, 0, counts.Get(graphlet.G1), "K4 has no induced wedges")
	require.EqualValues(t, 4, counts.Get(graphlet.G2)) // 4 triangular faces
	require.EqualValues(t, 0, counts.Get(graphlet.G3))
	require.EqualValues(t, 0, counts.Get(graphlet.G4))
	require.EqualValues(t, 0, counts.Get(graphlet.G5))
	require.EqualValues(t, 0, counts.Get(graphlet.G6))
	require.EqualValues(t, 0, counts.Get(graphlet.G7))
	require.EqualValues(t, 1, counts.Get(graphlet.G8))
}

// TestExactPathGraph pins the closed-form G1/G3 counts for a path graph
// (spec.md §8: "G1 count = n-2, G3 count = n-3" for P_n).
func TestExactPathGraph(t *testing.T) {
	const n = 6
	g := path(n)
	counts, _, err := graphlet.Enumerate(context.Background(), g, graphlet.DefaultOptions())
	require.NoError(t, err)

	require.EqualValues(t, n-1, counts.Get(graphlet.G0))
	require.EqualValues(t, n-2, counts.Get(graphlet.G1))
	require.EqualValues(t, 0, counts.Get(graphlet.G2))
	require.EqualValues(t, n-3, counts.Get(graphlet.G3))
	require.EqualValues(t, 0, counts.Get(graphlet.G4))
}

func TestExactStarGraphIsAllClaws(t *testing.T) {
	g := star(3) // one hub, 3 leaves: K_{1,3}
	counts, _, err := graphlet.Enumerate(context.Background(), g, graphlet.DefaultOptions())
	require.NoError(t, err)

	require.EqualValues(t, 3, counts.Get(graphlet.G0))
	require.EqualValues(t, 3, counts.Get(graphlet.G1)) // 3 wedges centred on the hub
	require.EqualValues(t, 1, counts.Get(graphlet.G4)) // exactly one claw
	require.EqualValues(t, 0, counts.Get(graphlet.G3))
}

func TestExactDiamondIsK4MinusOneEdge(t *testing.T) {
	g := complete(4)
	// Remove one edge to turn the 4-clique into a diamond.
	g2 := graph.New()
	for i := 0; i < 4; i++ {
		g2.AddNode(coarsen.NodeID(i))
	}
	_ = g2.AddEdge(0, 1, 1)
	_ = g2.AddEdge(0, 2, 1)
	_ = g2.AddEdge(0, 3, 1)
	_ = g2.AddEdge(1, 2, 1)
	_ = g2.AddEdge(1, 3, 1)
	_ = g

	counts, _, err := graphlet.Enumerate(context.Background(), g2, graphlet.DefaultOptions())
	require.NoError(t, err)

	require.EqualValues(t, 5, counts.Get(graphlet.G0))
	require.EqualValues(t, 1, counts.Get(graphlet.G7), "exactly one diamond shape")
	require.EqualValues(t, 0, counts.Get(graphlet.G8))
}

func TestExactFourCycle(t *testing.T) {
	g := graph.New()
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(3, 0, 1)

	counts, _, err := graphlet.Enumerate(context.Background(), g, graphlet.DefaultOptions())
	require.NoError(t, err)

	require.EqualValues(t, 4, counts.Get(graphlet.G0))
	require.EqualValues(t, 1, counts.Get(graphlet.G5))
	require.EqualValues(t, 0, counts.Get(graphlet.G6))
	require.EqualValues(t, 0, counts.Get(graphlet.G2))
}

func TestEnumerateEmptyGraphIsAllZero(t *testing.T) {
	g := graph.New()
	counts, sampled, err := graphlet.Enumerate(context.Background(), g, graphlet.DefaultOptions())
	require.NoError(t, err)
	require.False(t, sampled)
	require.Equal(t, 0.0, counts.Total())
}

func TestEnumerateSingleNodeIsAllZero(t *testing.T) {
	g := graph.New()
	g.AddNode(0)
	counts, _, err := graphlet.Enumerate(context.Background(), g, graphlet.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 0.0, counts.Total())
}

// TestEnumerateForceSamplingAgreesWithExact checks the sampling fallback
// converges to the exact counts within a generous relative tolerance on a
// moderately sized random graph (spec.md §8's convergence property).
func TestEnumerateForceSamplingAgreesWithExact(t *testing.T) {
	g := randomGraph(40, 120, 7)

	exact, sampled, err := graphlet.Enumerate(context.Background(), g, graphlet.DefaultOptions())
	require.NoError(t, err)
	require.False(t, sampled)

	opts := graphlet.DefaultOptions()
	opts.ForceSampling = true
	opts.SampleSize = 200000
	opts.Seed = 7

	approx, sampled2, err := graphlet.Enumerate(context.Background(), g, opts)
	require.NoError(t, err)
	require.True(t, sampled2)

	for _, id := range []graphlet.ID{graphlet.G0, graphlet.G1, graphlet.G2} {
		want := exact.Get(id)
		got := approx.Get(id)
		if want == 0 {
			continue
		}
		relErr := abs(got-want) / want
		require.LessOrEqual(t, relErr, 0.15, "graphlet %s: want %v got %v", id, want, got)
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}

	return f
}
