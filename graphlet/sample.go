package graphlet

import (
	"math/rand"

	"github.com/arkusai/memgraph/coarsen"
	"github.com/arkusai/memgraph/graph"
)

// sample implements the sampling fallback of spec.md §4.5 for graphs too
// large (or by explicit request) for exact enumeration.
//
// Seeded for reproducibility, matching the teacher's own seeded-RNG
// convention in tsp/rng.go and builder/config.go's WithSeed. The 3-node
// and 4-node counts are estimated from two independent draws, each
// matched to what the exact algorithm actually sums over:
//
//   - 4-node counts reuse the exact per-edge anchor computation
//     (classifyFourSet, unionExcluding, anchorMin) unmodified, run only
//     over S edges drawn uniformly with replacement instead of every
//     edge. Because the exact algorithm already attributes each true
//     4-set to exactly one anchor edge, summing the per-edge
//     contribution over a uniform random subset of edges and scaling by
//     |E|/S is an unbiased Monte Carlo estimator of the exact sum.
//   - 3-node counts are estimated from S nodes drawn uniformly with
//     replacement from the node set (not derived from the edge sample),
//     scaled by NodeCount/S. Sampling edges instead of nodes here would
//     be biased toward high-degree endpoints — e.g. on a star every
//     sampled edge touches the hub, so its contribution would be
//     counted on every draw regardless of S, and the estimate would
//     never converge to the true per-node sum. Drawing nodes directly
//     makes each node equally likely to be sampled regardless of its
//     degree, so the average contribution over S draws is an unbiased
//     estimator of the true per-node mean for any degree distribution.
func sample(g *graph.Graph, opts Options) (Count, error) {
	rawEdges := g.EdgeList()
	if len(rawEdges) == 0 {
		return Count{}, nil
	}

	rng := rand.New(rand.NewSource(int64(opts.Seed)))
	sampleSize := opts.SampleSize
	if sampleSize < 1 {
		sampleSize = 1
	}

	nodes := g.Nodes()

	var triangleRaw, wedgeRaw float64
	for i := 0; i < sampleSize; i++ {
		v := nodes[rng.Intn(len(nodes))]
		tri, wed := threeNodeContribution(g, v)
		triangleRaw += tri
		wedgeRaw += wed
	}

	var fourNodeRaw Count
	for i := 0; i < sampleSize; i++ {
		e := rawEdges[rng.Intn(len(rawEdges))]
		accumulateFourNode(g, e.U, e.V, &fourNodeRaw)
	}

	totalEdges := float64(len(rawEdges))
	nodeCount := float64(g.NodeCount())
	scale3 := nodeCount / float64(sampleSize)
	scale4 := totalEdges / float64(sampleSize)

	var out Count
	// G0 (the single edge) is known exactly from EdgeCount and needs no
	// Monte Carlo extrapolation.
	out.Add(G0, totalEdges)
	out.Add(G2, triangleRaw*scale3/3)
	out.Add(G1, wedgeRaw*scale3)
	for _, id := range []ID{G3, G4, G5, G6, G7, G8} {
		out.Add(id, fourNodeRaw.Get(id)*scale4)
	}

	return out, nil
}

// threeNodeContribution computes v's raw triangle/wedge contribution,
// exactly as in exact3Node's inner loop, for a single node.
func threeNodeContribution(g *graph.Graph, v coarsen.NodeID) (triangle, wedge float64) {
	nbrs := g.Neighbors(v)
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if g.HasEdge(nbrs[i], nbrs[j]) {
				triangle++
			} else {
				wedge++
			}
		}
	}

	return triangle, wedge
}

// accumulateFourNode runs the exact anchor-based 4-set classification for
// a single (u,v) edge and adds the result into out.
func accumulateFourNode(g *graph.Graph, u, v coarsen.NodeID, out *Count) {
	candidates := unionExcluding(g.Neighbors(u), g.Neighbors(v), u, v)
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			a, b := candidates[i], candidates[j]
			if anchorMin(u, v, a, b) != u {
				continue
			}
			id, err := classifyFourSet(g, u, v, a, b)
			if err != nil {
				continue
			}
			out.Add(id, 1)
		}
	}
}
