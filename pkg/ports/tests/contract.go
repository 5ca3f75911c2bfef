package tests

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/aretw0/failtrace/pkg/ports"
)

// GraphLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.GraphLoader.
// expected maps node ids to the node each raw definition must decode to.
func GraphLoaderContractTest(t *testing.T, loader ports.GraphLoader, expected map[string]domain.Node) {
	t.Helper()

	t.Run("GetNode_Success", func(t *testing.T) {
		for id, want := range expected {
			raw, err := loader.GetNode(id)
			if err != nil {
				t.Fatalf("unexpected error getting node %s: %v", id, err)
			}
			var got domain.Node
			if err := json.Unmarshal(raw, &got); err != nil {
				t.Fatalf("node %s is not valid JSON: %v (%s)", id, err, raw)
			}
			if got.ID != want.ID || got.Kind != want.Kind || got.Prompt != want.Prompt || got.Detail != want.Detail {
				t.Errorf("node mismatch for %s. got %+v, want %+v", id, got, want)
			}
			if len(got.Edges) != len(want.Edges) {
				t.Fatalf("edge count mismatch for %s. got %d, want %d", id, len(got.Edges), len(want.Edges))
			}
			for i := range want.Edges {
				if got.Edges[i] != want.Edges[i] {
					t.Errorf("edge %d mismatch for %s. got %+v, want %+v", i, id, got.Edges[i], want.Edges[i])
				}
			}
		}
	})

	t.Run("GetNode_NotFound", func(t *testing.T) {
		_, err := loader.GetNode("non-existent-node")
		if err == nil {
			t.Error("expected error for non-existent node, got nil")
		}
	})

	t.Run("ListNodes", func(t *testing.T) {
		nodes, err := loader.ListNodes()
		if err != nil {
			t.Fatalf("unexpected error listing nodes: %v", err)
		}

		if len(nodes) != len(expected) {
			t.Errorf("expected %d nodes, got %d", len(expected), len(nodes))
		}

		lookup := make(map[string]bool)
		for _, id := range nodes {
			lookup[id] = true
		}

		for id := range expected {
			if !lookup[id] {
				t.Errorf("node %s missing from list", id)
			}
		}
	})
}
