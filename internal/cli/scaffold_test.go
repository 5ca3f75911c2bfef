package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/failtrace"
	"github.com/aretw0/failtrace/pkg/playbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffold(t *testing.T) {
	want, err := playbook.Graph()
	require.NoError(t, err)

	for _, format := range []string{FormatMarkdown, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "triage")
			require.NoError(t, Scaffold(context.Background(), dir, format))

			engine, err := failtrace.New(dir)
			require.NoError(t, err)
			assert.Equal(t, want.Nodes(), engine.Inspect())
			assert.Empty(t, engine.Unreachable())
		})
	}

	t.Run("Markdown Layout", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, Scaffold(context.Background(), dir, FormatMarkdown))

		data, err := os.ReadFile(filepath.Join(dir, "sol-rollback.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "kind: solution")
		assert.Contains(t, string(data), "Revert to last known good artifact")
	})

	t.Run("Unknown Format", func(t *testing.T) {
		assert.Error(t, Scaffold(context.Background(), t.TempDir(), "toml"))
	})
}
