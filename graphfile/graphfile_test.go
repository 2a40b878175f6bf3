package graphfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/socialpath/graph"
	"github.com/katalvlaran/socialpath/graphfile"
	"github.com/katalvlaran/socialpath/social"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_SocialFixture checks the YAML copy of the fixture matches the in-code one.
func TestLoad_SocialFixture(t *testing.T) {
	g, err := graphfile.Load(filepath.Join("testdata", "social.yaml"))
	require.NoError(t, err)

	want := social.Network()
	assert.Equal(t, want.Nodes(), g.Nodes())
	assert.Equal(t, want.Adjacency(), g.Adjacency())
	assert.False(t, g.Symmetric())
}

// TestLoad_SymmetricDocument honors symmetric: true from the file.
func TestLoad_SymmetricDocument(t *testing.T) {
	g, err := graphfile.Load(filepath.Join("testdata", "ring.yaml"))
	require.NoError(t, err)
	require.True(t, g.Symmetric())

	nbrs, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d"}, nbrs)
}

// TestLoad_MissingFile surfaces the underlying os error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := graphfile.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestDecode_KeyOrderPreserved registers nodes in file order, not sorted order.
func TestDecode_KeyOrderPreserved(t *testing.T) {
	src := `
nodes:
  zulu: [alpha]
  mike:
  alpha: [mike, zulu]
  yankee: ~
`
	g, err := graphfile.Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"zulu", "mike", "alpha", "yankee"}, g.Nodes())

	nbrs, err := g.Neighbors("mike")
	require.NoError(t, err)
	assert.Empty(t, nbrs)
	assert.True(t, g.Declared("yankee"))
}

// TestDecode_CallerOptions applies options passed alongside the document.
func TestDecode_CallerOptions(t *testing.T) {
	g, err := graphfile.Decode(strings.NewReader("nodes:\n  a: [b]\n"), graph.WithSymmetric())
	require.NoError(t, err)
	assert.True(t, g.HasEdge("b", "a"))
}

// TestDecode_Invalid covers malformed and mis-shaped documents.
func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"missing nodes":  "symmetric: true\n",
		"nodes scalar":   "nodes: hello\n",
		"nodes list":     "nodes: [a, b]\n",
		"neighbor value": "nodes:\n  a: b\n",
		"null neighbor":  "nodes:\n  a: [~]\n",
		"empty neighbor": "nodes:\n  a: [b, \"\"]\n",
		"nested list":    "nodes:\n  a: [[b]]\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graphfile.Decode(strings.NewReader(src))
			assert.ErrorIs(t, err, graphfile.ErrInvalidDocument)
		})
	}

	_, err := graphfile.Decode(strings.NewReader("nodes: [unclosed\n"))
	assert.Error(t, err)
}

// TestDecode_DuplicateNode reports repeated keys through the builder.
func TestDecode_DuplicateNode(t *testing.T) {
	_, err := graphfile.Decode(strings.NewReader("nodes:\n  a: [b]\n  a: [c]\n"))
	assert.ErrorIs(t, err, graph.ErrDuplicateNode)
}

// TestEncode_RoundTrip writes a graph and reads it back unchanged.
func TestEncode_RoundTrip(t *testing.T) {
	for name, g := range map[string]*graph.Graph[string]{
		"declared":  social.Network(),
		"symmetric": social.Network(graph.WithSymmetric()),
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, graphfile.Encode(&buf, g))
			assert.Contains(t, buf.String(), "Min: [William, Jayden, Omar")

			back, err := graphfile.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, g.Nodes(), back.Nodes())
			assert.Equal(t, g.Adjacency(), back.Adjacency())
		})
	}
}

// TestEncode_QuotesAmbiguousNames keeps names that look like other YAML types as strings.
func TestEncode_QuotesAmbiguousNames(t *testing.T) {
	g, err := graph.NewBuilder[string]().
		Add("123", "null", "true").
		Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, g))

	back, err := graphfile.Decode(&buf)
	require.NoError(t, err)
	nbrs, err := back.Neighbors("123")
	require.NoError(t, err)
	assert.Equal(t, []string{"null", "true"}, nbrs)
}

// TestEncode_NilGraph rejects a nil graph.
func TestEncode_NilGraph(t *testing.T) {
	assert.ErrorIs(t, graphfile.Encode(&bytes.Buffer{}, nil), graph.ErrGraphNil)
}
