package dto

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/failtrace/pkg/domain"
)

// NodeMetadata is the on-disk shape of a node, shared by the YAML and Markdown sources.
// It uses "mapstructure" tags so frontmatter and generic YAML maps decode into it.
type NodeMetadata struct {
	ID   string `json:"id" yaml:"id" mapstructure:"id"`
	Kind string `json:"kind" yaml:"kind" mapstructure:"kind"`
	// Type is the legacy name of Kind.
	Type   string         `json:"type,omitempty" yaml:"type,omitempty" mapstructure:"type"`
	Prompt string         `json:"prompt" yaml:"prompt" mapstructure:"prompt"`
	Title  string         `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Detail string         `json:"detail,omitempty" yaml:"detail,omitempty" mapstructure:"detail"`
	Edges  []EdgeMetadata `json:"edges" yaml:"edges" mapstructure:"edges"`
}

// EdgeMetadata accepts both the long (label/target) and short (text/to) spellings.
type EdgeMetadata struct {
	Label  string `json:"label" yaml:"label" mapstructure:"label"`
	Text   string `json:"text,omitempty" yaml:"text,omitempty" mapstructure:"text"`
	Target string `json:"target" yaml:"target" mapstructure:"target"`
	To     string `json:"to,omitempty" yaml:"to,omitempty" mapstructure:"to"`
}

// wireNode is the JSON shape the compiler parses.
type wireNode struct {
	ID     string     `json:"id"`
	Kind   string     `json:"kind"`
	Prompt string     `json:"prompt"`
	Detail string     `json:"detail,omitempty"`
	Edges  []wireEdge `json:"edges,omitempty"`
}

type wireEdge struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

// NodeID returns the declared id, falling back to fallback.
func (m NodeMetadata) NodeID(fallback string) string {
	if m.ID == "" {
		return fallback
	}
	return m.ID
}

// Normalize returns a copy whose id and edge targets are file references turned
// into node ids. Only sources that address nodes by file name need it.
func (m NodeMetadata) Normalize() NodeMetadata {
	out := m
	out.ID = TrimExtension(m.ID)
	out.Edges = make([]EdgeMetadata, len(m.Edges))
	for i, e := range m.Edges {
		e.Target = TrimExtension(e.Target)
		e.To = TrimExtension(e.To)
		out.Edges[i] = e
	}
	return out
}

// Encode resolves aliases and produces the raw JSON definition loaders hand to the compiler.
// body is free text (a Markdown body, for instance): it becomes the detail of
// solution and terminal nodes, and the prompt of a question that has none.
func (m NodeMetadata) Encode(fallbackID, body string) ([]byte, error) {
	kind := m.Kind
	if kind == "" {
		kind = m.Type
	}
	// Unknown kinds pass through untouched and are reported by the compiler.
	if parsed, err := domain.ParseKind(kind); err == nil {
		kind = string(parsed)
	}

	prompt := firstNonEmpty(m.Prompt, m.Title)
	detail := m.Detail
	body = strings.TrimSpace(body)

	if kind == string(domain.KindQuestion) {
		if prompt == "" {
			prompt = body
		}
	} else if detail == "" {
		detail = body
	}

	node := wireNode{
		ID:     m.NodeID(fallbackID),
		Kind:   kind,
		Prompt: prompt,
		Detail: detail,
	}
	for i, e := range m.Edges {
		target := firstNonEmpty(e.Target, e.To)
		if target == "" {
			return nil, fmt.Errorf("node %s: edge #%d has no target", node.ID, i)
		}
		node.Edges = append(node.Edges, wireEdge{
			Label:  firstNonEmpty(e.Label, e.Text, target),
			Target: target,
		})
	}

	data, err := json.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal node %s: %w", node.ID, err)
	}
	return data, nil
}

// FromNode is the inverse of Encode: it returns the canonical metadata of a compiled node.
func FromNode(n domain.Node) NodeMetadata {
	m := NodeMetadata{
		ID:     n.ID,
		Kind:   string(n.Kind),
		Prompt: n.Prompt,
		Detail: n.Detail,
	}
	for _, e := range n.Edges {
		m.Edges = append(m.Edges, EdgeMetadata{Label: e.Label, Target: e.Target})
	}
	return m
}

// nodeFileExtensions are the extensions a node file reference may carry.
var nodeFileExtensions = map[string]bool{
	".md":   true,
	".yaml": true,
	".yml":  true,
	".json": true,
}

// TrimExtension strips a node file extension from an id and normalizes separators.
// Other dotted suffixes are part of the id: "sol-v1.2" stays as is.
func TrimExtension(id string) string {
	id = filepath.ToSlash(id)
	if ext := filepath.Ext(id); nodeFileExtensions[strings.ToLower(ext)] {
		return strings.TrimSuffix(id, ext)
	}
	return id
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
