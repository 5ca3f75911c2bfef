package validator

import (
	"fmt"
	"sort"

	"github.com/aretw0/failtrace/internal/compiler"
	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/aretw0/failtrace/pkg/ports"
)

// ValidateGraph crawls the graph from rootID and reports broken links.
// Unlike compiler.Compile it follows edges, so it names the node that points at a missing target.
func ValidateGraph(loader ports.GraphLoader, parser *compiler.Parser, rootID string) error {
	if _, err := loader.GetNode(rootID); err != nil {
		return &domain.ConfigurationError{Issues: []string{fmt.Sprintf("root node %q not found", rootID)}}
	}

	visited := map[string]bool{}
	queue := []string{rootID}
	var issues []string

	for len(queue) > 0 {
		currentID := queue[0]
		queue = queue[1:]

		if visited[currentID] {
			continue
		}
		visited[currentID] = true

		raw, err := loader.GetNode(currentID)
		if err != nil {
			// Reported by the referencing node below.
			continue
		}
		node, err := parser.Parse(raw)
		if err != nil {
			issues = append(issues, err.Error())
			continue
		}

		for _, e := range node.Edges {
			if _, err := loader.GetNode(e.Target); err != nil {
				issues = append(issues, fmt.Sprintf("node %q: edge %q points to missing node %q", node.ID, e.Label, e.Target))
				visited[e.Target] = true
				continue
			}
			if !visited[e.Target] {
				queue = append(queue, e.Target)
			}
		}
	}

	if len(issues) > 0 {
		return &domain.ConfigurationError{Issues: issues}
	}
	return nil
}

// Unreachable returns the ids of nodes that no path from the root reaches, sorted.
// Orphans are legal but usually point at a typo in an edge target.
func Unreachable(g *domain.Graph) []string {
	seen := map[string]bool{g.Root(): true}
	queue := []string{g.Root()}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		node, ok := g.Node(id)
		if !ok {
			continue
		}
		for _, e := range node.Edges {
			if !seen[e.Target] {
				seen[e.Target] = true
				queue = append(queue, e.Target)
			}
		}
	}

	var orphans []string
	for _, n := range g.Nodes() {
		if !seen[n.ID] {
			orphans = append(orphans, n.ID)
		}
	}
	sort.Strings(orphans)
	return orphans
}
