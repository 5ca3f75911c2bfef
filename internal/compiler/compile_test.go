package compiler_test

import (
	"testing"

	"github.com/aretw0/failtrace/internal/compiler"
	"github.com/aretw0/failtrace/pkg/adapters/memory"
	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	p := compiler.NewParser()

	node, err := p.Parse([]byte(`{"id":"sol-logs","kind":"failure","prompt":" Escalate to L2 ","detail":"Deep log analysis required."}`))
	require.NoError(t, err)
	assert.Equal(t, domain.KindTerminal, node.Kind)
	assert.Equal(t, "Escalate to L2", node.Prompt)
	assert.Empty(t, node.Edges)

	_, err = p.Parse([]byte(`{"kind":"question"}`))
	assert.Error(t, err)

	_, err = p.Parse([]byte(`{"id":"x","kind":"text"}`))
	assert.Error(t, err)

	_, err = p.Parse([]byte(`not json`))
	assert.Error(t, err)
}

func TestCompile(t *testing.T) {
	loader := memory.NewLoader(map[string]string{
		"start": `{"id":"start","kind":"question","prompt":"Symptom?","edges":[{"label":"Errors","target":"fix"}]}`,
		"fix":   `{"id":"fix","kind":"solution","prompt":"Rollback","detail":"Revert."}`,
	})

	g, err := compiler.Compile(loader, "start")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())

	start, ok := g.Node("start")
	require.True(t, ok)
	assert.Equal(t, []domain.Edge{{Label: "Errors", Target: "fix"}}, start.Edges)
}

func TestCompile_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		data map[string]string
	}{
		{
			name: "Dangling Target",
			data: map[string]string{
				"start": `{"id":"start","kind":"question","prompt":"?","edges":[{"label":"x","target":"ghost"}]}`,
			},
		},
		{
			name: "Unknown Kind",
			data: map[string]string{
				"start": `{"id":"start","kind":"banana"}`,
			},
		},
		{
			name: "ID Mismatch",
			data: map[string]string{
				"start": `{"id":"other","kind":"solution","prompt":"x"}`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compiler.Compile(memory.NewLoader(tt.data), "start")
			require.Error(t, err)
			assert.True(t, domain.IsConfigurationError(err), "got %T: %v", err, err)
		})
	}
}
