package domain

import "fmt"

// Validate checks a graph definition for closed-world referential integrity
// and for the shape each node kind requires. It collects every issue instead
// of stopping at the first one.
func Validate(root string, nodes []Node) error {
	var issues []string

	ids := make(map[string]bool, len(nodes))
	for i, n := range nodes {
		if n.ID == "" {
			issues = append(issues, fmt.Sprintf("node #%d has an empty id", i))
			continue
		}
		if ids[n.ID] {
			issues = append(issues, fmt.Sprintf("duplicate node id %q", n.ID))
		}
		ids[n.ID] = true
	}

	switch {
	case root == "":
		issues = append(issues, "root node id is empty")
	case !ids[root]:
		issues = append(issues, fmt.Sprintf("root node %q does not exist", root))
	}

	for _, n := range nodes {
		if n.ID == "" {
			continue
		}
		issues = append(issues, shapeIssues(n)...)

		for _, e := range n.Edges {
			if !ids[e.Target] {
				issues = append(issues, fmt.Sprintf("node %q: edge %q points to missing node %q", n.ID, e.Label, e.Target))
			}
		}
	}

	if len(issues) > 0 {
		return &ConfigurationError{Issues: issues}
	}
	return nil
}

func shapeIssues(n Node) []string {
	var issues []string
	switch n.Kind {
	case KindQuestion:
		if len(n.Edges) == 0 {
			issues = append(issues, fmt.Sprintf("node %q: question has no edges", n.ID))
		}
		if n.Detail != "" {
			issues = append(issues, fmt.Sprintf("node %q: question cannot carry detail", n.ID))
		}
	case KindSolution, KindTerminal:
		if len(n.Edges) > 0 {
			issues = append(issues, fmt.Sprintf("node %q: %s cannot have edges", n.ID, n.Kind))
		}
	default:
		issues = append(issues, fmt.Sprintf("node %q: unknown kind %q", n.ID, n.Kind))
	}
	return issues
}
