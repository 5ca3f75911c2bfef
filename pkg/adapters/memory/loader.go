package memory

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/aretw0/failtrace/pkg/domain"
)

// Loader serves node definitions held in memory.
// The built-in playbook and graphs assembled with pkg/dsl load through it.
type Loader struct {
	defs map[string][]byte
}

// NewLoader wraps definitions already in wire form (JSON), keyed by node id.
func NewLoader(defs map[string]string) *Loader {
	l := &Loader{defs: make(map[string][]byte, len(defs))}
	for id, def := range defs {
		l.defs[id] = []byte(def)
	}
	return l
}

// NewFromNodes encodes nodes into wire form. Every id must be set and unique.
func NewFromNodes(nodes ...domain.Node) (*Loader, error) {
	l := &Loader{defs: make(map[string][]byte, len(nodes))}
	for i, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node #%d has no id", i)
		}
		if _, dup := l.defs[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node ID: %s", n.ID)
		}
		def, err := json.Marshal(n)
		if err != nil {
			return nil, fmt.Errorf("failed to encode node %s: %w", n.ID, err)
		}
		l.defs[n.ID] = def
	}
	return l, nil
}

// GetNode returns the definition of id.
func (l *Loader) GetNode(id string) ([]byte, error) {
	def, ok := l.defs[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return def, nil
}

// ListNodes returns every id, sorted.
func (l *Loader) ListNodes() ([]string, error) {
	ids := make([]string, 0, len(l.defs))
	for id := range l.defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
