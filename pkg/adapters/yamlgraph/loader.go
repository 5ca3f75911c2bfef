// Package yamlgraph loads a diagnostic graph from a single YAML document.
//
// The document declares the root and the node list:
//
//	root: start
//	nodes:
//	  - id: start
//	    kind: question
//	    prompt: What is the primary symptom?
//	    edges:
//	      - label: High Error Rate (5xx)
//	        target: check-errors
//	  - id: check-errors
//	    ...
package yamlgraph

import (
	"fmt"
	"os"
	"sort"

	"github.com/aretw0/failtrace/internal/dto"
	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the graph file name looked up inside a graph directory.
const DefaultFile = "graph.yaml"

type document struct {
	Root  string             `yaml:"root" mapstructure:"root"`
	Nodes []dto.NodeMetadata `yaml:"nodes" mapstructure:"nodes"`
}

// Loader implements ports.GraphLoader over a parsed YAML graph.
type Loader struct {
	root  string
	nodes map[string][]byte
}

// Load reads and parses the graph file at path.
func Load(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse decodes a YAML graph document.
// Unknown keys are rejected so a misspelled field does not silently drop an edge.
// Scalars are weakly typed: an unquoted "label: 1" reads as the string "1".
func Parse(data []byte) (*Loader, error) {
	var generic map[string]any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	var doc document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(generic); err != nil {
		return nil, fmt.Errorf("invalid graph document: %w", err)
	}

	l := &Loader{
		root:  doc.Root,
		nodes: make(map[string][]byte, len(doc.Nodes)),
	}
	for i, meta := range doc.Nodes {
		id := meta.NodeID("")
		if id == "" {
			return nil, fmt.Errorf("node #%d has no id", i)
		}
		if _, dup := l.nodes[id]; dup {
			return nil, fmt.Errorf("collision detected: node id '%s' is defined more than once", id)
		}
		raw, err := meta.Encode(id, "")
		if err != nil {
			return nil, err
		}
		l.nodes[id] = raw
	}
	return l, nil
}

// Marshal writes nodes as a graph document that Parse reads back.
func Marshal(root string, nodes []domain.Node) ([]byte, error) {
	doc := document{Root: root}
	for _, n := range nodes {
		doc.Nodes = append(doc.Nodes, dto.FromNode(n))
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal graph: %w", err)
	}
	return data, nil
}

// Root returns the root declared by the document, or "" when it has none.
func (l *Loader) Root() string {
	return l.root
}

// GetNode retrieves the raw definition of a node by ID.
func (l *Loader) GetNode(id string) ([]byte, error) {
	raw, ok := l.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return raw, nil
}

// ListNodes returns all node IDs, sorted.
func (l *Loader) ListNodes() ([]string, error) {
	ids := make([]string, 0, len(l.nodes))
	for id := range l.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
