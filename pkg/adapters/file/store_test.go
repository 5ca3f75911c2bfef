package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/failtrace/pkg/adapters/file"
	"github.com/aretw0/failtrace/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunKVStoreContract(t, store)
}

func TestFileStore_KeysOnMissingDir(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "does-not-exist"))

	keys, err := store.Keys(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestFileStore_EscapesKeys(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session:a/b", []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "session:a%2Fb.json", entries[0].Name())

	keys, err := store.Keys(ctx, "session:")
	require.NoError(t, err)
	assert.Equal(t, []string{"session:a/b"}, keys)
}

func TestFileStore_EmptyKey(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	assert.Error(t, store.Put(ctx, "", nil))
	_, err := store.Get(ctx, "")
	assert.Error(t, err)
	assert.Error(t, store.Delete(ctx, ""))
}

func TestFileStore_KeysListsDotLeadingKeys(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, ".hidden", []byte("x")))
	require.NoError(t, store.Put(ctx, "visible", []byte("y")))
	// Leftover from an interrupted Put.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".put-123456"), []byte("z"), 0644))

	keys, err := store.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{".hidden", "visible"}, keys)

	got, err := store.Get(ctx, ".hidden")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), got)
}
