// Package signature derives the normalized 9-vector feature summary of a
// graphlet.Count and the similarity metrics classify uses to match it
// against reference patterns (spec.md §4.6).
package signature

import (
	"github.com/arkusai/memgraph/graphlet"
	"gonum.org/v1/gonum/floats"
)

// dims is the fixed dimensionality of a Signature vector (one per
// graphlet.ID, G0…G8).
const dims = 9

// Signature is the immutable normalized feature vector plus derived
// ratios for a graphlet.Count (spec.md §4.6). Values are constructed once
// and never mutated.
type Signature struct {
	Vec [dims]float64

	EdgeRatio     float64
	PathRatio     float64
	StarRatio     float64
	TriangleRatio float64
	CycleRatio    float64
}

// From builds a Signature from a graphlet.Count.
func From(c graphlet.Count) Signature {
	return FromVector(c.Normalized())
}

// FromVector builds a Signature directly from an already-normalized
// 9-vector, used both by From and by classify's reference-pattern table
// (spec.md §4.7: "reference vectors are data, not code").
func FromVector(vec [dims]float64) Signature {
	return Signature{
		Vec:           vec,
		EdgeRatio:     vec[graphlet.G0],
		PathRatio:     vec[graphlet.G1] + vec[graphlet.G3],
		StarRatio:     vec[graphlet.G4],
		TriangleRatio: vec[graphlet.G2] + vec[graphlet.G6] + vec[graphlet.G7] + vec[graphlet.G8],
		CycleRatio:    vec[graphlet.G5],
	}
}

// CosineSimilarity returns cos(a,b) = (a·b) / (‖a‖·‖b‖), clamped to [0,1]
// since both vectors are non-negative (spec.md §4.6). Returns 0 if either
// vector has zero norm (the all-zero, empty-graph signature).
func CosineSimilarity(a, b Signature) float64 {
	av, bv := a.Vec[:], b.Vec[:]
	normA := floats.Norm(av, 2)
	normB := floats.Norm(bv, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	dot := floats.Dot(av, bv)
	sim := dot / (normA * normB)
	if sim > 1 {
		sim = 1
	} else if sim < 0 {
		sim = 0
	}

	return sim
}

// EuclideanDistance returns the L2 distance between a and b.
func EuclideanDistance(a, b Signature) float64 {
	diff := make([]float64, dims)
	copy(diff, a.Vec[:])
	floats.Sub(diff, b.Vec[:])

	return floats.Norm(diff, 2)
}

// IsEmpty reports whether the signature is the all-zero vector produced
// by an empty (or edgeless) graph.
func (s Signature) IsEmpty() bool {
	return floats.Norm(s.Vec[:], 2) == 0
}
