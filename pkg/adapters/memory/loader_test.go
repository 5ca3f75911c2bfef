package memory_test

import (
	"testing"

	"github.com/aretw0/failtrace/pkg/adapters/memory"
	"github.com/aretw0/failtrace/pkg/domain"
	contract "github.com/aretw0/failtrace/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryLoader_Contract(t *testing.T) {
	nodes := map[string]domain.Node{
		"start": {ID: "start", Kind: domain.KindQuestion, Prompt: "Symptom?", Edges: []domain.Edge{{Label: "Errors", Target: "end"}}},
		"end":   {ID: "end", Kind: domain.KindSolution, Prompt: "Rollback", Detail: "Revert to LKG."},
	}

	loader, err := memory.NewFromNodes(nodes["start"], nodes["end"])
	require.NoError(t, err)

	contract.GraphLoaderContractTest(t, loader, nodes)
}

func TestInMemoryLoader_RawJSON(t *testing.T) {
	loader := memory.NewLoader(map[string]string{
		"b": `{"id":"b","kind":"solution","prompt":"B"}`,
		"a": `{"id":"a","kind":"solution","prompt":"A"}`,
	})

	ids, err := loader.ListNodes()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestNewFromNodes_Errors(t *testing.T) {
	_, err := memory.NewFromNodes(domain.Node{Kind: domain.KindSolution})
	assert.ErrorContains(t, err, "node #0 has no id")

	_, err = memory.NewFromNodes(domain.Node{ID: "x"}, domain.Node{ID: "x"})
	assert.ErrorContains(t, err, "duplicate node ID: x")
}
