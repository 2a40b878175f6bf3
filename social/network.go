// Package social provides the fourteen-person "who knows whom" network used
// as the reference fixture for shortest-path queries.
//
// The data is kept exactly as declared, including its asymmetries: Nathan and
// Scott only know each other, while several people list Nathan or Liam
// without being listed back. Pass graph.WithSymmetric() to Network to treat
// "knows" as mutual.
package social

import (
	"slices"

	"github.com/katalvlaran/socialpath/graph"
)

// entry is one person and the people they know, in declared order.
type entry struct {
	name  string
	knows []string
}

// declared is never handed out directly; every accessor copies it.
var declared = []entry{
	{"Min", []string{"William", "Jayden", "Omar"}},
	{"William", []string{"Min", "Noam"}},
	{"Jayden", []string{"Min", "Amelia", "Ren", "Noam"}},
	{"Ren", []string{"Jayden", "Omar"}},
	{"Amelia", []string{"Jayden", "Adam", "Miguel"}},
	{"Adam", []string{"Amelia", "Miguel", "Sofia", "Lucas"}},
	{"Miguel", []string{"Amelia", "Adam", "Liam", "Nathan"}},
	{"Noam", []string{"Nathan", "Jayden", "William"}},
	{"Omar", []string{"Ren", "Min", "Scott"}},
	{"Sofia", []string{"Lucas", "Miguel", "Lucas"}},
	{"Lucas", []string{"Sofia", "Min", "Scott"}},
	{"Liam", []string{"Miguel"}},
	{"Nathan", []string{"Scott"}},
	{"Scott", []string{"Nathan"}},
}

// Network builds a fresh graph of the fixture. Each call returns an
// independent value.
func Network(opts ...graph.Option) *graph.Graph[string] {
	b := graph.NewBuilder[string](opts...)
	for _, e := range declared {
		b.Add(e.name, e.knows...)
	}
	g, err := b.Build()
	if err != nil {
		// names are unique; a failure here is a broken fixture
		panic("social: invalid fixture: " + err.Error())
	}

	return g
}

// Names returns every person in declared order.
func Names() []string {
	names := make([]string, 0, len(declared))
	for _, e := range declared {
		names = append(names, e.name)
	}

	return names
}

// Adjacency returns a copy of the declared data, duplicates included.
func Adjacency() map[string][]string {
	out := make(map[string][]string, len(declared))
	for _, e := range declared {
		out[e.name] = slices.Clone(e.knows)
	}

	return out
}
