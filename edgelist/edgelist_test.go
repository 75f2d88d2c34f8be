// SPDX-License-Identifier: MIT
package edgelist_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gainsearch/builder"
	"github.com/katalvlaran/gainsearch/core"
	"github.com/katalvlaran/gainsearch/edgelist"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		n     int
		pairs []builder.Pair
	}{
		{"plain", "0 1\n1 2\n", 3, []builder.Pair{{U: 0, V: 1}, {U: 1, V: 2}}},
		{"dash and separators", "0-1, 2 - 3; 4 5", 6, []builder.Pair{{U: 0, V: 1}, {U: 2, V: 3}, {U: 4, V: 5}}},
		{"header and comments", "# demo\nvertices: 8\n0 7 # last\n", 8, []builder.Pair{{U: 0, V: 7}}},
		{"header only", "vertices 4", 4, []builder.Pair{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := edgelist.ParseString(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.n, l.Vertices)
			assert.Equal(t, tc.pairs, l.Pairs)
		})
	}
}

func TestParseString_Errors(t *testing.T) {
	_, err := edgelist.ParseString("0 x")
	require.ErrorIs(t, err, edgelist.ErrSyntax)

	_, err = edgelist.ParseString("0")
	require.ErrorIs(t, err, edgelist.ErrSyntax)

	_, err = edgelist.ParseString("# nothing\n")
	require.ErrorIs(t, err, edgelist.ErrEmpty)

	l, err := edgelist.ParseString("vertices: 2\n0 5")
	require.NoError(t, err)
	_, err = l.Build()
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	l, err = edgelist.ParseString("1 1")
	require.NoError(t, err)
	_, err = l.Build()
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestWriteLoadRoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(5, nil, builder.FromEdges([]builder.Pair{{U: 3, V: 1}, {U: 0, V: 4}}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, g))
	assert.Equal(t, "vertices: 5\n1 3\n0 4\n", buf.String())

	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	back, err := edgelist.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, back.VertexCount())
	assert.True(t, back.HasEdge(1, 3))
	assert.True(t, back.HasEdge(0, 4))

	_, err = edgelist.Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
