package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/failtrace/pkg/domain"
)

// GraphOverlay contains session state to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []string
	CurrentNode  string
}

// OverlayFromPath builds an overlay from a session path.
func OverlayFromPath(path []string) *GraphOverlay {
	if len(path) == 0 {
		return nil
	}
	return &GraphOverlay{
		VisitedNodes: append([]string(nil), path[:len(path)-1]...),
		CurrentNode:  path[len(path)-1],
	}
}

// GenerateMermaid produces a Mermaid flowchart from a list of nodes.
// Shapes follow the node kind:
// - Root: ((Circle))
// - Question: {Rhombus}
// - Solution: ([Stadium])
// - Terminal: [[Subroutine]]
// Edge labels are the answer texts. Overlay styles (visited/current) are applied if provided.
func GenerateMermaid(nodes []domain.Node, root string, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range nodes {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[", "]"
		switch {
		case node.ID == root:
			opener, closer = "((", "))"
		case node.Kind == domain.KindQuestion:
			opener, closer = "{", "}"
		case node.Kind == domain.KindSolution:
			opener, closer = "([", "])"
		case node.Kind == domain.KindTerminal:
			opener, closer = "[[", "]]"
		}

		text := node.Prompt
		if text == "" {
			text = node.ID
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(text), closer)

		for _, e := range node.Edges {
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", safeID, escapeLabel(e.Label), sanitizeMermaidID(e.Target))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps contrast on the light fills in both themes.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			safeID := sanitizeMermaidID(id)
			if safeID != "" && !visitedSet[safeID] {
				visitedSet[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}

		if overlay.CurrentNode != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode))
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
