package domain

import (
	"fmt"
	"strings"
)

// NodeKind defines the control flow behavior of a node.
type NodeKind string

const (
	// KindQuestion displays a prompt and branches on the chosen edge.
	KindQuestion NodeKind = "question"
	// KindSolution is a diagnosis with a recommended action. It ends the trace.
	KindSolution NodeKind = "solution"
	// KindTerminal is a dead-end diagnosis that requires escalation.
	KindTerminal NodeKind = "terminal"

	// kindFailureAlias is the legacy wire name of KindTerminal.
	kindFailureAlias = "failure"
)

// ParseKind normalizes a raw kind string. "failure" is accepted as an alias of terminal.
func ParseKind(raw string) (NodeKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(KindQuestion):
		return KindQuestion, nil
	case string(KindSolution):
		return KindSolution, nil
	case string(KindTerminal), kindFailureAlias:
		return KindTerminal, nil
	default:
		return "", fmt.Errorf("unknown node kind %q", raw)
	}
}

// IsTerminal reports whether nodes of this kind end a trace.
func (k NodeKind) IsTerminal() bool {
	return k == KindSolution || k == KindTerminal
}

// Valid reports whether k is one of the known kinds.
func (k NodeKind) Valid() bool {
	switch k {
	case KindQuestion, KindSolution, KindTerminal:
		return true
	}
	return false
}

// Edge is a labeled directed transition selectable by the user.
type Edge struct {
	Label  string `json:"label" yaml:"label"`
	Target string `json:"target" yaml:"target"`
}

// Node represents a vertex of the diagnostic graph.
// Nodes are part of static configuration and never change after load.
type Node struct {
	ID     string   `json:"id" yaml:"id"`
	Kind   NodeKind `json:"kind" yaml:"kind"`
	Prompt string   `json:"prompt" yaml:"prompt"`

	// Detail holds the extended guidance of a Solution or Terminal node.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`

	// Edges is ordered. Empty for Solution and Terminal nodes.
	Edges []Edge `json:"edges,omitempty" yaml:"edges,omitempty"`
}

// Edge returns the outgoing edge leading to target, if any.
func (n Node) Edge(target string) (Edge, bool) {
	for _, e := range n.Edges {
		if e.Target == target {
			return e, true
		}
	}
	return Edge{}, false
}

// IsTerminal reports whether the trace halts at this node.
func (n Node) IsTerminal() bool {
	return len(n.Edges) == 0
}

func (n Node) clone() Node {
	out := n
	if n.Edges != nil {
		out.Edges = append([]Edge(nil), n.Edges...)
	}
	return out
}
