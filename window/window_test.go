package window_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkusai/memgraph/coarsen"
	"github.com/arkusai/memgraph/window"
)

func ids(vals ...uint64) []coarsen.NodeID {
	out := make([]coarsen.NodeID, len(vals))
	for i, v := range vals {
		out[i] = coarsen.NodeID(v)
	}

	return out
}

func TestNewFixedRejectsTooSmall(t *testing.T) {
	_, err := window.NewFixed(1)
	require.ErrorIs(t, err, window.ErrWindowTooSmall)
}

func TestFixedEmitsAllPairsPerGroup(t *testing.T) {
	f, err := window.NewFixed(3)
	require.NoError(t, err)

	seq := ids(1, 2, 3)
	var pairs []window.Pair
	for _, id := range seq {
		pairs = append(pairs, f.Observe(id)...)
	}

	require.Len(t, pairs, 3) // {1,2},{1,3},{2,3}
}

func TestFixedCollapsesDuplicatesWithinGroup(t *testing.T) {
	f, err := window.NewFixed(4)
	require.NoError(t, err)

	seq := ids(1, 1, 1, 2)
	var pairs []window.Pair
	for _, id := range seq {
		pairs = append(pairs, f.Observe(id)...)
	}

	// distinct ids in the group are just {1,2}: exactly one pair
	require.Len(t, pairs, 1)
}

func TestSlidingPairsAgainstCurrentWindow(t *testing.T) {
	s, err := window.NewSliding(3) // window of the 2 preceding distinct positions
	require.NoError(t, err)

	var all []window.Pair
	all = append(all, s.Observe(coarsen.NodeID(1))...) // no pairs yet
	all = append(all, s.Observe(coarsen.NodeID(2))...) // pairs with 1
	all = append(all, s.Observe(coarsen.NodeID(3))...) // pairs with 1,2; 1 evicted after this push if needed

	require.NotEmpty(t, all)
	for _, p := range all {
		require.NotEqual(t, p.A, p.B)
	}
}

func TestSlidingNeverPairsRepeatArrivalWithItself(t *testing.T) {
	s, err := window.NewSliding(2)
	require.NoError(t, err)

	_ = s.Observe(coarsen.NodeID(1))
	pairs := s.Observe(coarsen.NodeID(1)) // repeat arrival
	require.Empty(t, pairs)
}

func TestAdaptiveShrinksUnderHighLocality(t *testing.T) {
	a, err := window.NewAdaptive(4)
	require.NoError(t, err)

	// Alternate between 2 addresses repeatedly: near-total locality.
	for i := 0; i < 50; i++ {
		if i%2 == 0 {
			a.Observe(coarsen.NodeID(1))
		} else {
			a.Observe(coarsen.NodeID(2))
		}
	}

	require.LessOrEqual(t, a.Size(), 4)
	require.GreaterOrEqual(t, a.Size(), 2)
}

func TestAdaptiveGrowsUnderLowLocality(t *testing.T) {
	a, err := window.NewAdaptive(2)
	require.NoError(t, err)

	// Every arrival is a fresh id: zero locality.
	for i := uint64(0); i < 50; i++ {
		a.Observe(coarsen.NodeID(i))
	}

	require.Greater(t, a.Size(), 2)
	require.LessOrEqual(t, a.Size(), 8) // bounded to 4*initial
}
