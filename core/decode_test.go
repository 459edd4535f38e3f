package core_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/core"
)

const diamondYAML = `
vertices: 4
undirected: true
edges:
  - {from: 0, to: 1, weight: 4}
  - {from: 0, to: 2, weight: 1}
  - {from: 2, to: 1, weight: 2}
  - {from: 1, to: 3, weight: 1}
  - {from: 2, to: 3, weight: 5}
`

func TestDecode_Undirected(t *testing.T) {
	g, err := core.Decode(strings.NewReader(diamondYAML))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 10, g.EdgeCount())

	n3, err := g.Neighbors(3)
	require.NoError(t, err)
	assert.ElementsMatch(t, []core.Edge{{3, 1, 1}, {3, 2, 5}}, n3)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"negative weight": "vertices: 2\nedges:\n  - {from: 0, to: 1, weight: -3}\n",
		"out of range":    "vertices: 2\nedges:\n  - {from: 0, to: 5, weight: 1}\n",
		"negative count":  "vertices: -2\n",
		"unknown field":   "vertices: 2\ncolour: red\n",
		"not yaml":        "vertices: [1, 2\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := core.Decode(strings.NewReader(doc))
			assert.ErrorIs(t, err, core.ErrBadDocument)
		})
	}

	_, err := core.Decode(strings.NewReader("vertices: 2\nedges:\n  - {from: 0, to: 1, weight: -3}\n"))
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestEncode_RoundTripThroughFile(t *testing.T) {
	g, err := core.Decode(strings.NewReader(diamondYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, core.Encode(&buf, g))

	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	back, err := core.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), back.Edges())

	_, err = core.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
