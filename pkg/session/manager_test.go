package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/failtrace/internal/runtime"
	"github.com/aretw0/failtrace/pkg/adapters/memory"
	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/aretw0/failtrace/pkg/playbook"
	"github.com/aretw0/failtrace/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newManager(t *testing.T) (*session.Manager, *memory.Store) {
	t.Helper()
	g, err := playbook.Graph()
	require.NoError(t, err)

	store := memory.NewStore()
	mgr := session.NewManager(store, runtime.NewEngine(g), session.WithClock(func() time.Time { return fixedNow }))
	return mgr, store
}

func TestManager_LoadOrStart(t *testing.T) {
	mgr, store := newManager(t)
	ctx := context.Background()

	s, err := mgr.LoadOrStart(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"start"}, s.Path)
	assert.Equal(t, fixedNow, s.UpdatedAt)

	raw, err := store.Get(ctx, "session:alice")
	require.NoError(t, err)

	var stored domain.Session
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, "alice", stored.ID)
	assert.Equal(t, []string{"start"}, stored.Path)
}

func TestManager_AdvanceAndReset(t *testing.T) {
	mgr, _ := newManager(t)
	ctx := context.Background()

	for _, target := range []string{"check-errors", "check-deploy", "sol-rollback"} {
		_, err := mgr.Advance(ctx, "bob", target)
		require.NoError(t, err)
	}

	loaded, err := mgr.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "check-errors", "check-deploy", "sol-rollback"}, loaded.Path)

	reset, err := mgr.Reset(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"start"}, reset.Path)

	loaded, err = mgr.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"start"}, loaded.Path)
}

func TestManager_InvalidAdvanceDoesNotPersist(t *testing.T) {
	mgr, _ := newManager(t)
	ctx := context.Background()

	_, err := mgr.Advance(ctx, "carol", "check-latency")
	require.NoError(t, err)

	_, err = mgr.Advance(ctx, "carol", "sol-rollback")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	loaded, err := mgr.Load(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "check-latency"}, loaded.Path)
}

func TestManager_LoadMissing(t *testing.T) {
	mgr, _ := newManager(t)
	_, err := mgr.Load(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestManager_LoadRejectsStalePath(t *testing.T) {
	mgr, store := newManager(t)
	ctx := context.Background()

	stale, err := json.Marshal(domain.Session{ID: "dave", Path: []string{"start", "removed-node"}})
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, session.Key("dave"), stale))

	_, err = mgr.Load(ctx, "dave")
	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))

	_, err = mgr.LoadOrStart(ctx, "dave")
	assert.True(t, domain.IsConfigurationError(err), "a stale session is not silently replaced")
}

func TestManager_LoadCorruptBlob(t *testing.T) {
	mgr, store := newManager(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, session.Key("eve"), []byte("{not json")))
	_, err := mgr.Load(ctx, "eve")
	assert.ErrorContains(t, err, "failed to decode session eve")
}

func TestManager_ListAndDelete(t *testing.T) {
	mgr, store := newManager(t)
	ctx := context.Background()

	for _, id := range []string{"zed", "amy", "kim"} {
		_, err := mgr.LoadOrStart(ctx, id)
		require.NoError(t, err)
	}
	require.NoError(t, store.Put(ctx, "agent-checklist", []byte("{}")))

	ids, err := mgr.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"amy", "kim", "zed"}, ids)

	require.NoError(t, mgr.Delete(ctx, "kim"))
	require.NoError(t, mgr.Delete(ctx, "kim"))

	ids, err = mgr.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"amy", "zed"}, ids)
}

type brokenStore struct{ *memory.Store }

func (brokenStore) Put(ctx context.Context, key string, value []byte) error {
	return errors.New("disk full")
}

func TestManager_SaveError(t *testing.T) {
	g, err := playbook.Graph()
	require.NoError(t, err)
	mgr := session.NewManager(brokenStore{memory.NewStore()}, runtime.NewEngine(g))

	_, err = mgr.LoadOrStart(context.Background(), "x")
	assert.ErrorContains(t, err, "disk full")
}
