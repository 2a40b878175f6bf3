// Package graphfile reads and writes string-keyed graphs as YAML documents.
//
// Format:
//
//	symmetric: false      # optional; true mirrors every edge
//	nodes:
//	  Min: [William, Jayden, Omar]
//	  William: [Min, Noam]
//	  Liam: [Miguel]
//	  Scott: []            # or omit the value entirely
//
// Key order under nodes is significant: it becomes the registration order of
// the graph and therefore the order of Nodes() and of mirrored neighbors.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/socialpath/graph"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned for YAML that is well-formed but does not
// follow the graph document layout.
var ErrInvalidDocument = errors.New("graphfile: invalid document")

// document mirrors the top-level YAML layout. Nodes is kept as a raw node so
// that mapping key order survives decoding.
type document struct {
	Symmetric bool      `yaml:"symmetric"`
	Nodes     yaml.Node `yaml:"nodes"`
}

// Load opens path and decodes it with Decode.
func Load(path string, opts ...graph.Option) (*graph.Graph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Decode parses one YAML document from r into a graph.
// opts are applied in addition to what the document requests.
// Node names and neighbor entries must be non-empty scalars.
func Decode(r io.Reader, opts ...graph.Option) (*graph.Graph[string], error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}

	nodes := &doc.Nodes
	if nodes.Kind == 0 {
		return nil, fmt.Errorf("%w: missing nodes", ErrInvalidDocument)
	}
	if nodes.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: nodes must be a mapping (line %d)", ErrInvalidDocument, nodes.Line)
	}

	if doc.Symmetric {
		opts = append(opts, graph.WithSymmetric())
	}
	b := graph.NewBuilder[string](opts...)
	// Content alternates key, value.
	for i := 0; i+1 < len(nodes.Content); i += 2 {
		key, val := nodes.Content[i], nodes.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, fmt.Errorf("%w: node name must be a non-empty scalar (line %d)", ErrInvalidDocument, key.Line)
		}
		var knows []string
		if !isNull(val) {
			if val.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("%w: neighbors of %q must be a list (line %d)", ErrInvalidDocument, key.Value, val.Line)
			}
			for _, n := range val.Content {
				if n.Kind != yaml.ScalarNode || isNull(n) || n.Value == "" {
					return nil, fmt.Errorf("%w: neighbor of %q must be a non-empty scalar (line %d)", ErrInvalidDocument, key.Value, n.Line)
				}
			}
			if err := val.Decode(&knows); err != nil {
				return nil, fmt.Errorf("graphfile: neighbors of %q: %w", key.Value, err)
			}
		}
		b.Add(key.Value, knows...)
	}

	return b.Build()
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// Encode writes g as a YAML document. Only declared nodes get an entry;
// nodes known solely as neighbors are implied by the lists that mention them.
//
// The written neighbor lists are the graph's effective lists, so a symmetric
// graph is written with its mirrored edges and symmetric: false.
func Encode(w io.Writer, g *graph.Graph[string]) error {
	if g == nil {
		return graph.ErrGraphNil
	}

	nodes := &yaml.Node{Kind: yaml.MappingNode}
	for _, id := range g.Nodes() {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		if !g.Declared(id) && len(nbrs) == 0 {
			continue
		}
		list := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, n := range nbrs {
			list.Content = append(list.Content, str(n))
		}
		nodes.Content = append(nodes.Content, str(id), list)
	}

	root := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		str("symmetric"),
		{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "false"},
		str("nodes"),
		nodes,
	}}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}

// str tags a scalar as a string so names such as "123" or "null" get quoted.
func str(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
