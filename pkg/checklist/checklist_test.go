package checklist

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/failtrace/internal/logging"
	"github.com/aretw0/failtrace/pkg/adapters/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklist_Categories(t *testing.T) {
	c := New(memory.NewStore())
	assert.Equal(t, []string{"Security & Safety", "Reliability", "Compliance", "Quality Assurance"}, c.Categories())
	assert.Len(t, c.Items(), 10)
	assert.Len(t, c.ItemsIn("Compliance"), 2)
	assert.Empty(t, c.ItemsIn("Nope"))
}

func TestChecklist_ToggleAndProgress(t *testing.T) {
	store := memory.NewStore()
	c := New(store)
	ctx := context.Background()

	for _, id := range []string{"sec-1", "rel-2", "qa-1"} {
		checked, err := c.Toggle(ctx, id)
		require.NoError(t, err)
		assert.True(t, checked)
	}

	status, err := c.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, status.Completed)
	assert.Equal(t, 10, status.Total)
	assert.Equal(t, 30, status.Progress)

	checked, err := c.Toggle(ctx, "rel-2")
	require.NoError(t, err)
	assert.False(t, checked)

	// Persisted across instances.
	status, err = New(store).Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, status.Completed)
	assert.Equal(t, 20, status.Progress)
}

func TestChecklist_ProgressRounds(t *testing.T) {
	c := New(memory.NewStore(), WithItems(
		Item{ID: "a", Category: "x"},
		Item{ID: "b", Category: "x"},
		Item{ID: "c", Category: "y"},
	))
	ctx := context.Background()

	_, err := c.Toggle(ctx, "a")
	require.NoError(t, err)
	status, err := c.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 33, status.Progress)

	_, err = c.Toggle(ctx, "b")
	require.NoError(t, err)
	status, err = c.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 67, status.Progress)
}

func TestChecklist_UnknownItem(t *testing.T) {
	c := New(memory.NewStore())
	_, err := c.Toggle(context.Background(), "sec-99")
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestChecklist_Reset(t *testing.T) {
	c := New(memory.NewStore())
	ctx := context.Background()

	_, err := c.Toggle(ctx, "com-1")
	require.NoError(t, err)
	require.NoError(t, c.Reset(ctx))

	status, err := c.Status(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.Completed)
	assert.Zero(t, status.Progress)
}

func TestChecklist_CorruptBlobIsEmpty(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, StoreKey, []byte("not json")))

	var logs bytes.Buffer
	c := New(store, WithLogger(logging.NewWithWriter(&logs, slog.LevelDebug)))

	state, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, state)
	assert.Contains(t, logs.String(), "discarding corrupt checklist state")

	checked, err := c.Toggle(ctx, "qa-2")
	require.NoError(t, err)
	assert.True(t, checked)
}

func TestChecklist_StaleIDsDoNotCount(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, StoreKey, []byte(`{"sec-1": true, "retired": true}`)))

	status, err := New(store).Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, status.Completed)
}
