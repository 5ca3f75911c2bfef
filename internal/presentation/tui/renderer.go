package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// If the terminal renderer cannot be built, the markdown is returned as is.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return PlainRenderer
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// PlainRenderer passes markdown through untouched. Used when stdout is not a terminal.
func PlainRenderer(markdown string) (string, error) {
	return markdown, nil
}

// NodeMarkdown formats the current step of a trace: breadcrumb, prompt, detail and options.
func NodeMarkdown(node domain.Node, history []domain.Node) string {
	var sb strings.Builder

	if len(history) > 1 {
		crumbs := make([]string, 0, len(history))
		for _, h := range history {
			crumbs = append(crumbs, h.ID)
		}
		fmt.Fprintf(&sb, "_%s_\n\n", strings.Join(crumbs, " › "))
	}

	switch node.Kind {
	case domain.KindQuestion:
		fmt.Fprintf(&sb, "## %s\n\n", node.Prompt)
		for i, e := range node.Edges {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, e.Label)
		}
	case domain.KindSolution:
		fmt.Fprintf(&sb, "## ✅ %s\n\n%s\n", node.Prompt, node.Detail)
	case domain.KindTerminal:
		fmt.Fprintf(&sb, "## ⚠️ %s\n\n%s\n", node.Prompt, node.Detail)
	default:
		fmt.Fprintf(&sb, "## %s\n", node.Prompt)
	}

	return sb.String()
}
