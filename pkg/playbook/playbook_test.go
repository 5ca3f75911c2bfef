package playbook_test

import (
	"testing"

	"github.com/aretw0/failtrace/internal/compiler"
	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/aretw0/failtrace/pkg/playbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_IsValid(t *testing.T) {
	g, err := playbook.Graph()
	require.NoError(t, err)
	assert.Equal(t, playbook.Root, g.Root())
	assert.Equal(t, 17, g.Len())
}

func TestGraph_TerminalNodesHaveNoEdges(t *testing.T) {
	g, err := playbook.Graph()
	require.NoError(t, err)

	for _, n := range g.Nodes() {
		if n.Kind.IsTerminal() {
			assert.Empty(t, n.Edges, "node %s", n.ID)
			assert.NotEmpty(t, n.Detail, "node %s", n.ID)
		} else {
			assert.NotEmpty(t, n.Edges, "node %s", n.ID)
		}
	}
}

func TestLoader_CompilesToSameGraph(t *testing.T) {
	loader, err := playbook.Loader()
	require.NoError(t, err)

	g, err := compiler.Compile(loader, playbook.Root)
	require.NoError(t, err)

	want, err := playbook.Graph()
	require.NoError(t, err)
	assert.Equal(t, want.Nodes(), g.Nodes())

	logs, ok := g.Node("sol-logs")
	require.True(t, ok)
	assert.Equal(t, domain.KindTerminal, logs.Kind)
}
