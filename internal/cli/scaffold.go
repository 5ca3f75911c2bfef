package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	loamAdapter "github.com/aretw0/failtrace/pkg/adapters/loam"
	"github.com/aretw0/failtrace/pkg/adapters/yamlgraph"
	"github.com/aretw0/failtrace/pkg/playbook"
	"github.com/aretw0/loam"
)

// Scaffold formats.
const (
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
)

// Scaffold writes the built-in playbook into dir so it can be edited and
// loaded back with --dir. Markdown produces one file per node; yaml a single graph.yaml.
func Scaffold(ctx context.Context, dir, format string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	switch format {
	case FormatMarkdown, "":
		repo, err := loam.Init(dir, loam.WithVersioning(false))
		if err != nil {
			return fmt.Errorf("failed to initialize loam: %w", err)
		}
		return loamAdapter.Export(ctx, repo, playbook.Nodes())
	case FormatYAML:
		data, err := yamlgraph.Marshal(playbook.Root, playbook.Nodes())
		if err != nil {
			return err
		}
		path := filepath.Join(dir, yamlgraph.DefaultFile)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatMarkdown, FormatYAML)
	}
}
