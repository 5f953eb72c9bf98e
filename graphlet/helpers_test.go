package graphlet_test

import (
	"math/rand"

	"github.com/arkusai/memgraph/coarsen"
	"github.com/arkusai/memgraph/graph"
)

// randomGraph builds a deterministic Erdős–Rényi-style random graph with n
// nodes and approximately targetEdges edges, for exact-vs-sampling
// convergence and exact-vs-brute-force agreement tests.
func randomGraph(n, targetEdges int, seed int64) *graph.Graph {
	rng := rand.New(rand.NewSource(seed))
	g := graph.New()
	for i := 0; i < n; i++ {
		g.AddNode(coarsen.NodeID(i))
	}

	added := 0
	for added < targetEdges {
		u := coarsen.NodeID(rng.Intn(n))
		v := coarsen.NodeID(rng.Intn(n))
		if u == v || g.HasEdge(u, v) {
			continue
		}
		_ = g.AddEdge(u, v, 1)
		added++
	}

	return g
}
