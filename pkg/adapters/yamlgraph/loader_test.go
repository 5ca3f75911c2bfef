package yamlgraph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/failtrace/internal/compiler"
	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/aretw0/failtrace/pkg/playbook"
	"github.com/aretw0/failtrace/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
root: start
nodes:
  - id: start
    kind: question
    prompt: Database CPU status?
    edges:
      - label: Pegged (100%)
        target: sol-db-scale
      - text: Normal Load
        to: escalate
  - id: sol-db-scale
    kind: solution
    title: Database Saturation
    detail: Kill slow queries.
  - id: escalate
    type: failure
    prompt: Escalate to L2
    detail: Deep log analysis required.
`

func TestLoader_Contract(t *testing.T) {
	loader, err := Parse([]byte(sample))
	require.NoError(t, err)

	tests.GraphLoaderContractTest(t, loader, map[string]domain.Node{
		"start": {
			ID: "start", Kind: domain.KindQuestion, Prompt: "Database CPU status?",
			Edges: []domain.Edge{
				{Label: "Pegged (100%)", Target: "sol-db-scale"},
				{Label: "Normal Load", Target: "escalate"},
			},
		},
		"sol-db-scale": {ID: "sol-db-scale", Kind: domain.KindSolution, Prompt: "Database Saturation", Detail: "Kill slow queries."},
		"escalate":     {ID: "escalate", Kind: domain.KindTerminal, Prompt: "Escalate to L2", Detail: "Deep log analysis required."},
	})
}

func TestLoad_CompilesGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	loader, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "start", loader.Root())

	g, err := compiler.Compile(loader, loader.Root())
	require.NoError(t, err)

	escalate, ok := g.Node("escalate")
	require.True(t, ok)
	assert.Equal(t, domain.KindTerminal, escalate.Kind)
}

func TestParse_DottedIDs(t *testing.T) {
	doc := `
root: which-release
nodes:
  - id: which-release
    kind: question
    prompt: Which client release?
    edges:
      - label: "1.2"
        target: sol-v1.2
      - label: "1.3"
        target: sol-v1.3
  - id: sol-v1.2
    kind: solution
    prompt: Upgrade from 1.2
  - id: sol-v1.3
    kind: solution
    prompt: Roll back 1.3
`
	loader, err := Parse([]byte(doc))
	require.NoError(t, err)

	ids, err := loader.ListNodes()
	require.NoError(t, err)
	assert.Equal(t, []string{"sol-v1.2", "sol-v1.3", "which-release"}, ids)

	g, err := compiler.Compile(loader, loader.Root())
	require.NoError(t, err)

	q, ok := g.Node("which-release")
	require.True(t, ok)
	assert.Equal(t, "sol-v1.3", q.Edges[1].Target)
}

func TestParse_NumericScalars(t *testing.T) {
	doc := `
root: pick
nodes:
  - id: pick
    kind: question
    prompt: 42
    edges:
      - label: 1
        target: done
  - id: done
    kind: terminal
    prompt: Done
`
	loader, err := Parse([]byte(doc))
	require.NoError(t, err)

	g, err := compiler.Compile(loader, loader.Root())
	require.NoError(t, err)

	pick, ok := g.Node("pick")
	require.True(t, ok)
	assert.Equal(t, "42", pick.Prompt)
	assert.Equal(t, []domain.Edge{{Label: "1", Target: "done"}}, pick.Edges)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "Invalid YAML", doc: "root: [", want: "invalid yaml"},
		{name: "Unknown Key", doc: "root: start\nnodez: []", want: "invalid graph document"},
		{name: "Duplicate", doc: "nodes:\n  - id: a\n    kind: solution\n  - id: a\n    kind: solution", want: "collision detected"},
		{name: "Missing ID", doc: "nodes:\n  - kind: solution", want: "has no id"},
		{name: "Edge Without Target", doc: "nodes:\n  - id: q\n    kind: question\n    edges:\n      - label: x", want: "has no target"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	want, err := playbook.Graph()
	require.NoError(t, err)

	data, err := Marshal(playbook.Root, playbook.Nodes())
	require.NoError(t, err)
	assert.Contains(t, string(data), "root: start")

	loader, err := Parse(data)
	require.NoError(t, err)

	got, err := compiler.Compile(loader, loader.Root())
	require.NoError(t, err)
	assert.Equal(t, want.Nodes(), got.Nodes())
}
