package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/failtrace/pkg/domain"
)

// Resolve maps a user answer to one of the node's edges.
// Accepted forms, in priority order: a 1-based option number, an exact target id,
// or a case-insensitive edge label.
func Resolve(node domain.Node, input string) (domain.Edge, error) {
	clean := strings.TrimSpace(input)
	if clean == "" {
		return domain.Edge{}, fmt.Errorf("%w: empty answer", domain.ErrInvalidTransition)
	}

	if n, err := strconv.Atoi(clean); err == nil {
		if n >= 1 && n <= len(node.Edges) {
			return node.Edges[n-1], nil
		}
		return domain.Edge{}, &domain.InvalidTransitionError{From: node.ID, To: clean}
	}

	if e, ok := node.Edge(clean); ok {
		return e, nil
	}

	for _, e := range node.Edges {
		if strings.EqualFold(e.Label, clean) {
			return e, nil
		}
	}

	return domain.Edge{}, &domain.InvalidTransitionError{From: node.ID, To: clean}
}
