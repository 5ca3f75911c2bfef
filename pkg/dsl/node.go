package dsl

import "github.com/aretw0/failtrace/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	node    domain.Node
	builder *Builder
}

// Question marks the node as a question with the given prompt.
func (n *NodeBuilder) Question(prompt string) *NodeBuilder {
	n.node.Kind = domain.KindQuestion
	n.node.Prompt = prompt
	return n
}

// Edge adds a labeled answer leading to target.
func (n *NodeBuilder) Edge(label, target string) *NodeBuilder {
	n.node.Edges = append(n.node.Edges, domain.Edge{Label: label, Target: target})
	return n
}

// Solution marks the node as a diagnosis with a recommended action.
func (n *NodeBuilder) Solution(title, detail string) *NodeBuilder {
	n.node.Kind = domain.KindSolution
	n.node.Prompt = title
	n.node.Detail = detail
	n.node.Edges = nil
	return n
}

// Terminal marks the node as a dead end that requires escalation.
func (n *NodeBuilder) Terminal(title, detail string) *NodeBuilder {
	n.node.Kind = domain.KindTerminal
	n.node.Prompt = title
	n.node.Detail = detail
	n.node.Edges = nil
	return n
}

// Build returns the underlying domain.Node.
func (n *NodeBuilder) Build() domain.Node {
	return n.node
}
