// Package graphlet counts the nine connected induced subgraphs on 2–4
// nodes ("graphlets") of a graph.Graph: exactly, when the graph is small
// enough, or via a seeded random-sampling fallback otherwise (spec.md
// §4.5). Exact 4-node enumeration always partitions the edge list across
// up to GOMAXPROCS goroutines (never more than one per edge) with
// golang.org/x/sync/errgroup, matching spec.md §5's allowance for
// commutative/associative partitioned counting.
package graphlet

import "errors"

// ErrInvariantViolation reports a structural bug found during
// enumeration: classifyFourSet returns it for a 4-node set with fewer
// than three edges, which a well-formed graph cannot produce. The exact
// path returns it from Enumerate; the sampling path skips such a set.
var ErrInvariantViolation = errors.New("graphlet: invariant violation")

// ID identifies one of the nine 2–4 node connected graphlets (spec.md
// §4.5's table).
type ID uint8

const (
	// G0 is the single edge (2 nodes, 1 edge).
	G0 ID = iota
	// G1 is the 2-path / wedge (3 nodes, 2 edges).
	G1
	// G2 is the triangle (3 nodes, 3 edges).
	G2
	// G3 is the 3-path (4 nodes, 3 edges).
	G3
	// G4 is the 3-star / claw (4 nodes, 3 edges).
	G4
	// G5 is the 4-cycle (4 nodes, 4 edges).
	G5
	// G6 is the tailed triangle: a triangle with one pendant edge
	// (4 nodes, 4 edges).
	G6
	// G7 is the diamond, K4 minus one edge (4 nodes, 5 edges).
	G7
	// G8 is the 4-clique, K4 (4 nodes, 6 edges).
	G8

	// numGraphlets is the fixed cardinality of the graphlet alphabet.
	numGraphlets = 9
)

// String names the graphlet shape, for logging.
func (id ID) String() string {
	switch id {
	case G0:
		return "edge"
	case G1:
		return "wedge"
	case G2:
		return "triangle"
	case G3:
		return "3-path"
	case G4:
		return "3-star"
	case G5:
		return "4-cycle"
	case G6:
		return "tailed-triangle"
	case G7:
		return "diamond"
	case G8:
		return "4-clique"
	default:
		return "invalid"
	}
}

// Count is a mapping from every ID (G0…G8) to a non-negative count. Zero
// value is the all-zero vector (spec.md §3: "Mapping from graphlet
// identifier ... to a non-negative integer").
//
// Sampled Counts hold extrapolated (non-integer-exact) estimates; callers
// distinguish the two via the Sampled flag returned alongside a Count by
// Enumerate.
type Count struct {
	values [numGraphlets]float64
}

// Add increments counts[id] by delta. Negative deltas are never produced
// by this package but are not rejected, to keep Count a plain value type.
func (c *Count) Add(id ID, delta float64) {
	c.values[id] += delta
}

// Get returns the count for id.
func (c Count) Get(id ID) float64 {
	return c.values[id]
}

// Total is the sum of every graphlet count.
func (c Count) Total() float64 {
	var total float64
	for _, v := range c.values {
		total += v
	}

	return total
}

// Normalized returns counts[g]/total for each id, or the all-zero vector
// when Total() == 0 (spec.md §3).
func (c Count) Normalized() [numGraphlets]float64 {
	var out [numGraphlets]float64
	total := c.Total()
	if total == 0 {
		return out
	}
	for i, v := range c.values {
		out[i] = v / total
	}

	return out
}

// merge adds other's counts into c in place; used to combine partitioned
// exact-enumeration results (spec.md §5: counts are commutative and
// associative over partitioning).
func (c *Count) merge(other Count) {
	for i, v := range other.values {
		c.values[i] += v
	}
}
