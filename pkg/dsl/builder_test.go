package dsl

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/failtrace/internal/compiler"
	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Builder {
	b := New()

	b.Add("start").
		Question("Is the service responding?").
		Edge("No", "check-deploy").
		Edge("Slowly", "sol-scale")

	b.Add("check-deploy").
		Question("Recent deployment?").
		Edge("Yes", "sol-rollback").
		Edge("No", "escalate")

	b.Add("sol-rollback").Solution("Roll back", "Revert to the last known good artifact.")
	b.Add("sol-scale").Solution("Scale out", "Add replicas.")
	b.Add("escalate").Terminal("Escalate to L2", "Page the owner.")
	return b
}

func TestBuilder_Build(t *testing.T) {
	loader, err := sample().Build()
	require.NoError(t, err)

	ids, err := loader.ListNodes()
	require.NoError(t, err)
	assert.Equal(t, []string{"check-deploy", "escalate", "sol-rollback", "sol-scale", "start"}, ids)

	raw, err := loader.GetNode("start")
	require.NoError(t, err)

	var start domain.Node
	require.NoError(t, json.Unmarshal(raw, &start))
	assert.Equal(t, domain.KindQuestion, start.Kind)
	assert.Equal(t, "Is the service responding?", start.Prompt)
	assert.Equal(t, []domain.Edge{
		{Label: "No", Target: "check-deploy"},
		{Label: "Slowly", Target: "sol-scale"},
	}, start.Edges)

	g, err := compiler.Compile(loader, "start")
	require.NoError(t, err)
	assert.Equal(t, 5, g.Len())
}

func TestBuilder_Graph(t *testing.T) {
	g, err := sample().Graph("start")
	require.NoError(t, err)

	escalate, ok := g.Node("escalate")
	require.True(t, ok)
	assert.Equal(t, domain.KindTerminal, escalate.Kind)
	assert.Equal(t, "Page the owner.", escalate.Detail)
}

func TestBuilder_AddReturnsExisting(t *testing.T) {
	b := New()
	b.Add("start").Question("First?").Edge("a", "a")
	b.Add("start").Edge("b", "b")

	nodes := b.Nodes()
	require.Len(t, nodes, 1)
	assert.Len(t, nodes[0].Edges, 2)
}

func TestBuilder_GraphRejectsDanglingEdge(t *testing.T) {
	b := New()
	b.Add("start").Question("?").Edge("go", "nowhere")

	_, err := b.Graph("start")
	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
	assert.Contains(t, err.Error(), `missing node "nowhere"`)
}

func TestNodeBuilder_SolutionDropsEdges(t *testing.T) {
	b := New()
	n := b.Add("x").Edge("stale", "y").Solution("Fix", "Do it.").Build()
	assert.Empty(t, n.Edges)
	assert.Equal(t, domain.KindSolution, n.Kind)
}
