package compiler

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/failtrace/pkg/domain"
)

// Parser is responsible for converting raw bytes into a Node.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// rawNode mirrors domain.Node with a free-form kind so aliases can be normalized.
type rawNode struct {
	ID     string        `json:"id"`
	Kind   string        `json:"kind"`
	Prompt string        `json:"prompt"`
	Detail string        `json:"detail"`
	Edges  []domain.Edge `json:"edges"`
}

// Parse decodes a JSON node definition and normalizes its kind.
func (p *Parser) Parse(data []byte) (*domain.Node, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse node: %w", err)
	}
	if raw.ID == "" {
		return nil, fmt.Errorf("node missing ID")
	}

	kind, err := domain.ParseKind(raw.Kind)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", raw.ID, err)
	}

	return &domain.Node{
		ID:     raw.ID,
		Kind:   kind,
		Prompt: strings.TrimSpace(raw.Prompt),
		Detail: strings.TrimSpace(raw.Detail),
		Edges:  raw.Edges,
	}, nil
}
