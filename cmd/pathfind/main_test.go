package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialpath/bfs"
	"github.com/katalvlaran/socialpath/graph"
)

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// writeGraph stores a YAML graph in a temp dir and returns its path.
func writeGraph(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestPathCmd_BuiltIn(t *testing.T) {
	out, _, err := run(t, "path", "Jayden", "Adam")
	require.NoError(t, err)
	assert.Equal(t, "Jayden -> Amelia -> Adam (2 hops)\n", out)
}

func TestPathCmd_JSON(t *testing.T) {
	out, _, err := run(t, "path", "Liam", "Scott", "--json")
	require.NoError(t, err)

	var res pathResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, pathResult{
		From: "Liam",
		To:   "Scott",
		Path: []string{"Liam", "Miguel", "Nathan", "Scott"},
		Hops: 3,
	}, res)
}

func TestPathCmd_Symmetric(t *testing.T) {
	_, stderr, err := run(t, "path", "Scott", "Min")
	assert.ErrorIs(t, err, bfs.ErrNotFound)
	assert.Contains(t, stderr, "no path")

	out, _, err := run(t, "--symmetric", "path", "Scott", "Min")
	require.NoError(t, err)
	assert.Equal(t, "Scott -> Omar -> Min (2 hops)\n", out)
}

func TestPathCmd_Errors(t *testing.T) {
	_, _, err := run(t, "path", "Jayden", "Nobody")
	assert.ErrorIs(t, err, graph.ErrUnknownNode)

	_, _, err = run(t, "path", "Liam", "Scott", "--max-depth", "2")
	assert.ErrorIs(t, err, bfs.ErrNotFound)

	_, _, err = run(t, "path", "Liam", "Scott", "--max-depth=-1")
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, _, err = run(t, "path", "only-one")
	assert.Error(t, err)

	_, _, err = run(t, "--log-level", "loud", "path", "Min", "Min")
	assert.Error(t, err)
}

func TestPathCmd_GraphFile(t *testing.T) {
	path := writeGraph(t, "nodes:\n  a: [b]\n  b: [c]\n")

	out, stderr, err := run(t, "--graph", path, "--log-level", "info", "path", "a", "c")
	require.NoError(t, err)
	assert.Equal(t, "a -> b -> c (2 hops)\n", out)
	assert.Contains(t, stderr, "graph loaded")

	_, _, err = run(t, "--graph", filepath.Join(t.TempDir(), "missing.yaml"), "path", "a", "c")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWalkCmd(t *testing.T) {
	out, _, err := run(t, "walk", "Scott")
	require.NoError(t, err)
	assert.Equal(t, "0\tScott\n1\tNathan\n", out)

	out, _, err = run(t, "walk", "Min", "--max-depth", "1")
	require.NoError(t, err)
	assert.Equal(t, "0\tMin\n1\tWilliam\n1\tJayden\n1\tOmar\n", out)

	_, _, err = run(t, "walk", "Nobody")
	assert.ErrorIs(t, err, graph.ErrUnknownNode)

	_, _, err = run(t, "walk", "Min", "--max-depth=-3")
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// parseMatrix turns the aligned table back into row → column → cell.
func parseMatrix(t *testing.T, out string) map[string]map[string]string {
	t.Helper()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	header := strings.Fields(lines[0])

	cells := make(map[string]map[string]string, len(lines)-1)
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		require.Len(t, fields, len(header)+1, line)
		row := make(map[string]string, len(header))
		for i, col := range header {
			row[col] = fields[i+1]
		}
		cells[fields[0]] = row
	}

	return cells
}

func TestMatrixCmd(t *testing.T) {
	out, _, err := run(t, "matrix", "--workers", "3")
	require.NoError(t, err)

	m := parseMatrix(t, out)
	require.Len(t, m, 14)
	assert.Equal(t, "0", m["Min"]["Min"])
	assert.Equal(t, "2", m["Jayden"]["Adam"])
	assert.Equal(t, "2", m["Min"]["Scott"])
	assert.Equal(t, "3", m["Liam"]["Scott"])
	assert.Equal(t, "-", m["Scott"]["Min"])

	out, _, err = run(t, "--symmetric", "matrix", "--workers", "1", "--cache-size", "8")
	require.NoError(t, err)
	m = parseMatrix(t, out)
	assert.Equal(t, "2", m["Scott"]["Min"])
	for from, row := range m {
		for to, cell := range row {
			assert.NotEqual(t, "-", cell, "%s→%s", from, to)
			assert.Equal(t, cell, m[to][from], "%s↔%s", from, to)
		}
	}

	_, _, err = run(t, "matrix", "--workers", "0")
	assert.Error(t, err)
}

func TestExportCmd_RoundTrip(t *testing.T) {
	out, _, err := run(t, "export")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "symmetric: false\nnodes:\n"), out)

	path := writeGraph(t, out)
	got, _, err := run(t, "--graph", path, "path", "Min", "Scott")
	require.NoError(t, err)
	assert.Equal(t, "Min -> Omar -> Scott (2 hops)\n", got)
}
