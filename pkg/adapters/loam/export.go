package loam

import (
	"context"
	"fmt"

	"github.com/aretw0/failtrace/internal/dto"
	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/aretw0/loam/pkg/core"
	"gopkg.in/yaml.v3"
)

// Export writes every node as <id>.md into repo, the layout Loader reads.
// The detail goes to the Markdown body; everything else is frontmatter.
func Export(ctx context.Context, repo core.Repository, nodes []domain.Node) error {
	for _, n := range nodes {
		meta := dto.FromNode(n)
		body := meta.Detail
		meta.Detail = ""

		front, err := yaml.Marshal(meta)
		if err != nil {
			return fmt.Errorf("failed to marshal frontmatter of %s: %w", n.ID, err)
		}

		doc := core.Document{
			ID:      n.ID + ".md",
			Content: "---\n" + string(front) + "---\n" + body + "\n",
		}
		if err := repo.Save(ctx, doc); err != nil {
			return fmt.Errorf("failed to save node %s: %w", n.ID, err)
		}
	}
	return nil
}
