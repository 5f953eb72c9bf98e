package signature_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkusai/memgraph/graphlet"
	"github.com/arkusai/memgraph/signature"
)

func TestFromEmptyCountIsEmpty(t *testing.T) {
	sig := signature.From(graphlet.Count{})
	require.True(t, sig.IsEmpty())
}

func TestFromNormalizesToUnitSum(t *testing.T) {
	var c graphlet.Count
	c.Add(graphlet.G0, 3)
	c.Add(graphlet.G2, 1)

	sig := signature.From(c)
	var sum float64
	for _, v := range sig.Vec {
		sum += v
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestCosineSimilarityIdenticalVectorsIsOne(t *testing.T) {
	a := signature.FromVector([9]float64{1, 0, 0, 0, 0, 0, 0, 0, 0})
	require.InDelta(t, 1.0, signature.CosineSimilarity(a, a), 1e-9)
}

func TestCosineSimilarityOrthogonalVectorsIsZero(t *testing.T) {
	a := signature.FromVector([9]float64{1, 0, 0, 0, 0, 0, 0, 0, 0})
	b := signature.FromVector([9]float64{0, 1, 0, 0, 0, 0, 0, 0, 0})
	require.InDelta(t, 0.0, signature.CosineSimilarity(a, b), 1e-9)
}

func TestCosineSimilarityWithEmptyIsZero(t *testing.T) {
	a := signature.FromVector([9]float64{1, 0, 0, 0, 0, 0, 0, 0, 0})
	empty := signature.Signature{}
	require.Equal(t, 0.0, signature.CosineSimilarity(a, empty))
}

func TestEuclideanDistanceZeroForIdentical(t *testing.T) {
	a := signature.FromVector([9]float64{0.2, 0.2, 0.2, 0.1, 0.1, 0.1, 0.05, 0.025, 0.025})
	require.InDelta(t, 0.0, signature.EuclideanDistance(a, a), 1e-9)
}
