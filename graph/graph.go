// Package graph implements the weighted, undirected, simple graph that
// backs the rest of the pipeline: an adjacency-list structure keyed by
// coarsen.NodeID, built directly rather than via a general-purpose graph
// library (spec.md §9: "no general-purpose library is required and
// avoiding it removes per-edge overhead that dominates enumeration time
// at scale").
//
// Unlike the teacher's core.Graph, this type carries no internal locking:
// spec.md §5 mandates a single-threaded, synchronous core with no shared
// mutable state, so construction is single-writer (graphbuild.Builder)
// and the result is read-only thereafter.
package graph

import (
	"errors"
	"sort"

	"github.com/arkusai/memgraph/coarsen"
)

// ErrSelfLoop is returned by AddEdge when from == to; self-loops are
// forbidden in the node co-occurrence graph (spec.md §3).
var ErrSelfLoop = errors.New("graph: self-loops are not allowed")

// ErrInvariantViolation signals a structural invariant failure — e.g. a
// multi-edge reaching the enumerator, which spec.md §4.5 classifies as a
// fatal, unrecoverable InvariantViolation.
var ErrInvariantViolation = errors.New("graph: invariant violation")

// neighbor pairs a neighbour id with the accumulated edge weight.
type neighbor struct {
	id     coarsen.NodeID
	weight int64
}

// Graph is a weighted undirected simple graph over coarsen.NodeID.
// Multi-edges are merged by summing weights; self-loops are rejected.
type Graph struct {
	adjacency map[coarsen.NodeID]map[coarsen.NodeID]int64
	order     []coarsen.NodeID // first-sighting insertion order, for stable iteration
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{adjacency: make(map[coarsen.NodeID]map[coarsen.NodeID]int64)}
}

// AddNode inserts id if absent. It is a no-op if id is already present.
// Nodes with no incident edges are permitted (spec.md §3) — they
// contribute to NodeCount but to no graphlet.
//
// Complexity: O(1).
func (g *Graph) AddNode(id coarsen.NodeID) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = make(map[coarsen.NodeID]int64)
	g.order = append(g.order, id)
}

// AddEdge adds weight to the edge (u,v), creating it (and both endpoints,
// lazily) if absent. Returns ErrSelfLoop if u == v.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v coarsen.NodeID, weight int64) error {
	if u == v {
		return ErrSelfLoop
	}
	g.AddNode(u)
	g.AddNode(v)
	g.adjacency[u][v] += weight
	g.adjacency[v][u] += weight

	return nil
}

// FilterMinWeight removes every edge whose accumulated weight is below
// min. This is the post-hoc filter spec.md §4.3 describes
// (min_edge_weight is applied after the full pass, never online).
//
// Complexity: O(E).
func (g *Graph) FilterMinWeight(min int64) {
	if min <= 1 {
		return
	}
	for u, nbrs := range g.adjacency {
		for v, w := range nbrs {
			if w < min {
				delete(nbrs, v)
			}
			_ = u
		}
	}
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.adjacency) }

// EdgeCount returns the number of distinct undirected edges.
//
// Complexity: O(V) over the adjacency map.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, nbrs := range g.adjacency {
		total += len(nbrs)
	}

	return total / 2
}

// Degree returns the number of distinct neighbours of v (0 if v is absent).
func (g *Graph) Degree(v coarsen.NodeID) int {
	return len(g.adjacency[v])
}

// HasEdge reports whether an edge (u,v) exists.
func (g *Graph) HasEdge(u, v coarsen.NodeID) bool {
	nbrs, ok := g.adjacency[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]

	return ok
}

// Weight returns the weight of edge (u,v) and whether it exists.
func (g *Graph) Weight(u, v coarsen.NodeID) (int64, bool) {
	nbrs, ok := g.adjacency[u]
	if !ok {
		return 0, false
	}
	w, ok := nbrs[v]

	return w, ok
}

// Neighbors returns the neighbours of v in deterministic (ascending id)
// order. Returns nil if v is absent.
//
// Complexity: O(d log d) where d is the degree of v.
func (g *Graph) Neighbors(v coarsen.NodeID) []coarsen.NodeID {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil
	}
	out := make([]coarsen.NodeID, 0, len(nbrs))
	for id := range nbrs {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Edges returns (neighbour, weight) pairs for v in deterministic
// (ascending neighbour id) order. Returns nil if v is absent.
func (g *Graph) Edges(v coarsen.NodeID) []struct {
	Neighbor coarsen.NodeID
	Weight   int64
} {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil
	}
	ids := make([]coarsen.NodeID, 0, len(nbrs))
	for id := range nbrs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]struct {
		Neighbor coarsen.NodeID
		Weight   int64
	}, len(ids))
	for i, id := range ids {
		out[i].Neighbor = id
		out[i].Weight = nbrs[id]
	}

	return out
}

// Nodes returns every node id in first-sighting insertion order
// (spec.md §3: "insertion order ... is preserved for stable iteration in
// tests").
func (g *Graph) Nodes() []coarsen.NodeID {
	out := make([]coarsen.NodeID, len(g.order))
	copy(out, g.order)

	return out
}

// EdgeList returns every undirected edge exactly once, as (u,v,weight)
// with u < v, in deterministic order (sorted by u then v). This is the
// canonical iteration order the graphlet enumerator partitions over.
func (g *Graph) EdgeList() []struct {
	U, V   coarsen.NodeID
	Weight int64
} {
	type e = struct {
		U, V   coarsen.NodeID
		Weight int64
	}
	var out []e
	for u, nbrs := range g.adjacency {
		for v, w := range nbrs {
			if u < v {
				out = append(out, e{U: u, V: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// Density is 2|E| / (|V|(|V|-1)) for |V| >= 2, else 0 (spec.md §4.4).
func (g *Graph) Density() float64 {
	n := g.NodeCount()
	if n < 2 {
		return 0
	}

	return 2 * float64(g.EdgeCount()) / float64(n*(n-1))
}

// MeanDegree returns the average node degree, 0 for an empty graph.
func (g *Graph) MeanDegree() float64 {
	n := g.NodeCount()
	if n == 0 {
		return 0
	}

	return 2 * float64(g.EdgeCount()) / float64(n)
}
