package compiler

import (
	"fmt"

	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/aretw0/failtrace/pkg/ports"
)

// Compile reads every node the loader lists and builds the validated graph.
// Parse and integrity problems are reported together as a *domain.ConfigurationError.
func Compile(loader ports.GraphLoader, root string) (*domain.Graph, error) {
	ids, err := loader.ListNodes()
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	parser := NewParser()
	nodes := make([]domain.Node, 0, len(ids))
	var issues []string

	for _, id := range ids {
		raw, err := loader.GetNode(id)
		if err != nil {
			return nil, fmt.Errorf("failed to load node %s: %w", id, err)
		}

		node, err := parser.Parse(raw)
		if err != nil {
			issues = append(issues, err.Error())
			continue
		}
		if node.ID != id {
			issues = append(issues, fmt.Sprintf("node listed as %q declares id %q", id, node.ID))
			continue
		}
		nodes = append(nodes, *node)
	}

	if len(issues) > 0 {
		return nil, &domain.ConfigurationError{Issues: issues}
	}

	return domain.NewGraph(root, nodes...)
}
