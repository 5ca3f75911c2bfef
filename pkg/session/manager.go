package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/aretw0/failtrace/internal/logging"
	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/aretw0/failtrace/pkg/ports"
)

// KeyPrefix namespaces session blobs in the store.
const KeyPrefix = "session:"

// Key returns the store key of a session.
func Key(sessionID string) string {
	return KeyPrefix + sessionID
}

// Engine is the subset of the trace engine the manager drives.
type Engine interface {
	Start(ctx context.Context, sessionID string) *domain.Session
	Advance(ctx context.Context, session *domain.Session, target string) (*domain.Session, error)
	Reset(ctx context.Context, session *domain.Session) *domain.Session
	Resume(session *domain.Session) error
}

// Manager orchestrates load, transition and save of trace sessions.
type Manager struct {
	store  ports.KVStore
	engine Engine
	logger *slog.Logger
	now    func() time.Time
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClock overrides the UpdatedAt source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a new Session Manager with the given persistence store.
func NewManager(store ports.KVStore, engine Engine, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		engine: engine,
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load retrieves an existing session and checks it against the current graph.
// A session recorded against a different graph yields a *domain.ConfigurationError.
func (m *Manager) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	raw, err := m.store.Get(ctx, Key(sessionID))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	var s domain.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", sessionID, err)
	}
	if s.ID == "" {
		s.ID = sessionID
	}

	if err := m.engine.Resume(&s); err != nil {
		return nil, fmt.Errorf("session %s no longer matches the graph: %w", sessionID, err)
	}
	return &s, nil
}

// LoadOrStart tries to load a session. If not found, it starts a new one at the root.
func (m *Manager) LoadOrStart(ctx context.Context, sessionID string) (*domain.Session, error) {
	s, err := m.Load(ctx, sessionID)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, domain.ErrSessionNotFound) {
		return nil, err
	}

	s = m.engine.Start(ctx, sessionID)
	if err := m.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	m.logger.Info("session started", "session_id", sessionID, "node_id", s.Current())
	return s, nil
}

// Advance moves a stored session along one edge and persists the result.
// On an invalid transition nothing is written.
func (m *Manager) Advance(ctx context.Context, sessionID, target string) (*domain.Session, error) {
	current, err := m.LoadOrStart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next, err := m.engine.Advance(ctx, current, target)
	if err != nil {
		return nil, err
	}
	if err := m.Save(ctx, next); err != nil {
		return nil, err
	}
	m.logDiff(current, next)
	return next, nil
}

// Reset truncates a stored session to the root and persists it.
func (m *Manager) Reset(ctx context.Context, sessionID string) (*domain.Session, error) {
	current, err := m.LoadOrStart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next := m.engine.Reset(ctx, current)
	if err := m.Save(ctx, next); err != nil {
		return nil, err
	}
	m.logDiff(current, next)
	return next, nil
}

// Save stamps UpdatedAt and writes the session blob.
func (m *Manager) Save(ctx context.Context, s *domain.Session) error {
	s.UpdatedAt = m.now().UTC()

	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", s.ID, err)
	}
	if err := m.store.Put(ctx, Key(s.ID), raw); err != nil {
		return fmt.Errorf("failed to save session %s: %w", s.ID, err)
	}
	return nil
}

// Delete removes the session from the store. Deleting a missing session is not an error.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	if err := m.store.Delete(ctx, Key(sessionID)); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	m.logger.Debug("session deleted", "session_id", sessionID)
	return nil
}

// List returns the ids of all stored sessions, sorted.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	keys, err := m.store.Keys(ctx, KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, KeyPrefix))
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *Manager) logDiff(oldSession, newSession *domain.Session) {
	diff := domain.Diff(oldSession, newSession)
	if diff == nil {
		return
	}
	m.logger.Debug("session updated",
		"session_id", diff.SessionID,
		"appended", diff.Appended,
		"reset", diff.Reset,
		"depth", len(newSession.Path),
	)
}
