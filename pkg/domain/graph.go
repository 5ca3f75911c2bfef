package domain

import "sort"

// Graph is the immutable diagnostic graph. Build it with NewGraph.
type Graph struct {
	root  string
	nodes map[string]Node
}

// NewGraph validates the nodes and returns the graph rooted at root.
// Any integrity violation is reported as a *ConfigurationError.
func NewGraph(root string, nodes ...Node) (*Graph, error) {
	if err := Validate(root, nodes); err != nil {
		return nil, err
	}

	g := &Graph{
		root:  root,
		nodes: make(map[string]Node, len(nodes)),
	}
	for _, n := range nodes {
		g.nodes[n.ID] = n.clone()
	}
	return g, nil
}

// Root returns the designated starting node id.
func (g *Graph) Root() string {
	return g.root
}

// Node returns a copy of the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return n.clone(), true
}

// Nodes returns all nodes sorted by id.
func (g *Graph) Nodes() []Node {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.nodes[id].clone())
	}
	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}
