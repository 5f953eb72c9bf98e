package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkusai/memgraph/access"
)

func TestParseNativeTraceSkipsBlankAndCommentLines(t *testing.T) {
	input := "# comment\n\nR,0x10,8,1\nW,0x18,4,2\n"
	accesses, err := parseNativeTrace(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, accesses, 2)
	require.Equal(t, access.Read, accesses[0].Op)
	require.EqualValues(t, 0x10, accesses[0].Address)
	require.Equal(t, access.Write, accesses[1].Op)
}

func TestParseNativeTraceRejectsBadFieldCount(t *testing.T) {
	_, err := parseNativeTrace(strings.NewReader("R,0x10,8\n"))
	require.Error(t, err)
}

func TestParseNativeTraceRejectsUnknownOp(t *testing.T) {
	_, err := parseNativeTrace(strings.NewReader("X,0x10,8,1\n"))
	require.Error(t, err)
}

func TestExpandModifiesSplitsIntoReadThenWrite(t *testing.T) {
	in := []access.MemoryAccess{{Op: access.Modify, Address: 0x20, Size: 4, Timestamp: 5}}
	out := expandModifies(in)

	require.Len(t, out, 2)
	require.Equal(t, access.Read, out[0].Op)
	require.Equal(t, access.Write, out[1].Op)
	require.Equal(t, out[0].Address, out[1].Address)
	require.Equal(t, out[0].Timestamp, out[1].Timestamp)
}
