package loam

import (
	"context"
	"fmt"

	"github.com/aretw0/loam"

	"github.com/aretw0/failtrace/internal/dto"
)

// Loader adapts the Loam library to the GraphLoader interface.
// Each node is a Markdown file: frontmatter holds the node metadata and the body
// is the node text (detail for solutions, prompt for questions without one).
type Loader struct {
	Repo *loam.TypedRepository[NodeMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[NodeMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at dir and wraps it.
func Open(dir string) (*Loader, error) {
	repo, err := loam.Init(dir,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[NodeMetadata](repo)), nil
}

// GetNode retrieves a node and encodes it as the JSON definition the compiler expects.
// Loam resolves "start" to start.md, so ids and edge targets may name the file.
func (l *Loader) GetNode(id string) ([]byte, error) {
	ctx := context.Background()

	doc, err := l.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}

	return doc.Data.Normalize().Encode(dto.TrimExtension(doc.ID), doc.Content)
}

// ListNodes lists all nodes in the repository.
func (l *Loader) ListNodes() ([]string, error) {
	ctx := context.Background()
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	ids := make([]string, 0, len(docs))

	for _, doc := range docs {
		id := doc.Data.Normalize().NodeID(dto.TrimExtension(doc.ID))

		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID
		ids = append(ids, id)
	}
	return ids, nil
}
