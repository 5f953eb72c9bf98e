package graphlet

import (
	"context"
	"runtime"

	"github.com/arkusai/memgraph/coarsen"
	"github.com/arkusai/memgraph/graph"
	"golang.org/x/sync/errgroup"
)

// Options controls Enumerate's exact/sampling decision and parameters
// (spec.md §6's sampling-related configuration surface).
type Options struct {
	// ExactNodeThreshold and ExactEdgeThreshold gate the exact/sampling
	// decision (spec.md §4.5): exact is used when NodeCount is below
	// ExactNodeThreshold OR EdgeCount is below ExactEdgeThreshold.
	ExactNodeThreshold int
	ExactEdgeThreshold int

	// ForceSampling requests the sampling estimator regardless of graph
	// size.
	ForceSampling bool

	// SampleSize is S, the number of edges drawn with replacement when
	// sampling is used.
	SampleSize int

	// Seed seeds the sampling RNG for reproducibility.
	Seed uint64
}

// DefaultOptions matches spec.md §6's defaults.
func DefaultOptions() Options {
	return Options{
		ExactNodeThreshold: 10000,
		ExactEdgeThreshold: 250000,
		SampleSize:         100000,
	}
}

// Enumerate counts every graphlet in g, choosing exact enumeration or the
// sampling fallback per opts. sampled reports which path was taken, for
// AnalysisResult's sampled flag (spec.md §9).
func Enumerate(ctx context.Context, g *graph.Graph, opts Options) (count Count, sampled bool, err error) {
	if g.NodeCount() < 2 {
		return Count{}, false, nil
	}

	useExact := !opts.ForceSampling &&
		(g.NodeCount() < opts.ExactNodeThreshold || g.EdgeCount() < opts.ExactEdgeThreshold)

	if useExact {
		count, err = exact(ctx, g)
		return count, false, err
	}

	count, err = sample(g, opts)

	return count, true, err
}

// exact performs exhaustive induced-subgraph counting (spec.md §4.5).
//
// 3-node counts: for each node v, classify every unordered pair of
// distinct neighbours {a,b} by whether (a,b) is itself an edge
// (triangle) or not (wedge). Each open wedge has a unique centre (the
// degree-2 vertex in the induced triple) so this loop counts each wedge
// exactly once; each triangle is visited once per vertex (3 times), so
// the raw triangle tally is divided by 3.
//
// 4-node counts: for each edge (u,v), candidates are the distinct
// neighbours of u or v excluding {u,v}; every unordered candidate pair
// {a,b} determines a 4-set {u,v,a,b}. To count each 4-set exactly once,
// it is only processed when u is the minimum id among the four (the
// anchor rule from spec.md §4.5).
func exact(ctx context.Context, g *graph.Graph) (Count, error) {
	var total Count
	total.Add(G0, float64(g.EdgeCount()))

	c3, err := exact3Node(g)
	if err != nil {
		return Count{}, err
	}
	total.merge(c3)

	c4, err := exact4Node(ctx, g)
	if err != nil {
		return Count{}, err
	}
	total.merge(c4)

	return total, nil
}

func exact3Node(g *graph.Graph) (Count, error) {
	var c Count
	var triangleRaw float64

	for _, v := range g.Nodes() {
		nbrs := g.Neighbors(v)
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				a, b := nbrs[i], nbrs[j]
				if g.HasEdge(a, b) {
					triangleRaw++
				} else {
					c.Add(G1, 1)
				}
			}
		}
	}
	c.Add(G2, triangleRaw/3)

	return c, nil
}

// edgeEntry mirrors graph.Graph.EdgeList's element shape (named locally
// to avoid depending on an anonymous struct type across packages).
type edgeEntry struct {
	U, V coarsen.NodeID
}

func exact4Node(ctx context.Context, g *graph.Graph) (Count, error) {
	rawEdges := g.EdgeList()
	edges := make([]edgeEntry, len(rawEdges))
	for i, e := range rawEdges {
		edges[i] = edgeEntry{U: e.U, V: e.V}
	}
	if len(edges) == 0 {
		return Count{}, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(edges) {
		workers = len(edges)
	}
	if workers < 1 {
		workers = 1
	}

	partials := make([]Count, workers)
	chunk := (len(edges) + workers - 1) / workers

	grp, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunk
		end := start + chunk
		if start >= len(edges) {
			continue
		}
		if end > len(edges) {
			end = len(edges)
		}
		grp.Go(func() error {
			return count4NodeRange(gctx, g, edges[start:end], &partials[w])
		})
	}
	if err := grp.Wait(); err != nil {
		return Count{}, err
	}

	var total Count
	for _, p := range partials {
		total.merge(p)
	}

	return total, nil
}

func count4NodeRange(ctx context.Context, g *graph.Graph, edges []edgeEntry, out *Count) error {
	for _, e := range edges {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		u, v := e.U, e.V
		candidates := unionExcluding(g.Neighbors(u), g.Neighbors(v), u, v)
		for i := 0; i < len(candidates); i++ {
			for j := i + 1; j < len(candidates); j++ {
				a, b := candidates[i], candidates[j]
				if anchorMin(u, v, a, b) != u {
					continue
				}
				id, err := classifyFourSet(g, u, v, a, b)
				if err != nil {
					return err
				}
				out.Add(id, 1)
			}
		}
	}

	return nil
}

// unionExcluding returns the sorted union of na and nb, excluding x and y.
func unionExcluding(na, nb []coarsen.NodeID, x, y coarsen.NodeID) []coarsen.NodeID {
	seen := make(map[coarsen.NodeID]struct{}, len(na)+len(nb))
	out := make([]coarsen.NodeID, 0, len(na)+len(nb))
	add := func(id coarsen.NodeID) {
		if id == x || id == y {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, id := range na {
		add(id)
	}
	for _, id := range nb {
		add(id)
	}

	return out
}

func anchorMin(ids ...coarsen.NodeID) coarsen.NodeID {
	min := ids[0]
	for _, id := range ids[1:] {
		if id < min {
			min = id
		}
	}

	return min
}

// classifyFourSet classifies the induced subgraph on {u,v,a,b}, where
// (u,v) is known to be an edge. It returns ErrInvariantViolation if fewer than 3 edges are present among the six
// pairs — impossible for a connected graph reached via a and b each
// adjacent to u or v, and therefore a structural bug if it occurs.
func classifyFourSet(g *graph.Graph, u, v, a, b coarsen.NodeID) (ID, error) {
	nodes := [4]coarsen.NodeID{u, v, a, b}
	var present [4][4]bool
	edgeCount := 0
	var degree [4]int
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if g.HasEdge(nodes[i], nodes[j]) {
				present[i][j] = true
				present[j][i] = true
				edgeCount++
				degree[i]++
				degree[j]++
			}
		}
	}

	maxDegree := 0
	for _, d := range degree {
		if d > maxDegree {
			maxDegree = d
		}
	}

	hasTriangle := func() bool {
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				for k := j + 1; k < 4; k++ {
					if present[i][j] && present[j][k] && present[i][k] {
						return true
					}
				}
			}
		}

		return false
	}

	switch edgeCount {
	case 3:
		if maxDegree == 3 {
			return G4, nil
		}

		return G3, nil
	case 4:
		if hasTriangle() {
			return G6, nil
		}

		return G5, nil
	case 5:
		return G7, nil
	case 6:
		return G8, nil
	default:
		return 0, ErrInvariantViolation
	}
}
