package access_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkusai/memgraph/access"
)

func TestOpKindValid(t *testing.T) {
	require.True(t, access.Read.Valid())
	require.True(t, access.Write.Valid())
	require.True(t, access.Modify.Valid())
	require.False(t, access.OpKind(99).Valid())
}

func TestOpKindString(t *testing.T) {
	require.Equal(t, "read", access.Read.String())
	require.Equal(t, "write", access.Write.String())
	require.Equal(t, "modify", access.Modify.String())
	require.Equal(t, "invalid", access.OpKind(99).String())
}

func TestSliceStreamOrder(t *testing.T) {
	want := []access.MemoryAccess{
		{Op: access.Read, Address: 1, Timestamp: 1},
		{Op: access.Write, Address: 2, Timestamp: 2},
	}
	s := access.NewSliceStream(want)

	var got []access.MemoryAccess
	for {
		a, ok, err := s.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, a)
	}

	require.Equal(t, want, got)
}

func TestSliceStreamEmpty(t *testing.T) {
	s := access.NewSliceStream(nil)
	_, ok, err := s.Next()
	require.NoError(t, err)
	require.False(t, ok)
}
