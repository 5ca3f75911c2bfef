package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/failtrace/internal/logging"
	"github.com/aretw0/failtrace/pkg/domain"
)

// Engine is the decision trace state machine.
// It holds no per-session state: every operation takes a session and returns a new one.
type Engine struct {
	graph  *domain.Graph
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine over a validated graph.
func NewEngine(graph *domain.Graph, opts ...EngineOption) *Engine {
	e := &Engine{
		graph:  graph,
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Graph returns the graph the engine traverses.
func (e *Engine) Graph() *domain.Graph {
	return e.graph
}

// Inspect returns every node, sorted by id, for visualization tools.
func (e *Engine) Inspect() []domain.Node {
	return e.graph.Nodes()
}

// Start creates a session positioned at the root and fires the enter hook for it.
func (e *Engine) Start(ctx context.Context, sessionID string) *domain.Session {
	session := domain.NewSession(sessionID, e.graph.Root())
	e.emitNodeEnter(ctx, session)
	return session
}

// CurrentNode returns the node at the end of the session path.
// The session must come from Start, Advance, Reset or a successful Resume.
func (e *Engine) CurrentNode(session *domain.Session) domain.Node {
	node, _ := e.graph.Node(session.Current())
	return node
}

// Advance appends target to the path if it is an edge of the current node.
// On failure it returns a *domain.InvalidTransitionError and session is left untouched.
func (e *Engine) Advance(ctx context.Context, session *domain.Session, target string) (*domain.Session, error) {
	current := e.CurrentNode(session)

	if _, ok := current.Edge(target); !ok {
		e.logger.Debug("transition rejected",
			"session_id", session.ID,
			"from", current.ID,
			"target", target,
		)
		e.emitRejected(ctx, session, target)
		return nil, &domain.InvalidTransitionError{From: current.ID, To: target}
	}

	next := session.Clone()
	next.Path = append(next.Path, target)

	e.logger.Debug("advanced", "session_id", next.ID, "from", current.ID, "to", target, "depth", len(next.Path))
	e.emitNodeEnter(ctx, next)
	return next, nil
}

// Reset returns a copy of the session truncated to the root.
func (e *Engine) Reset(ctx context.Context, session *domain.Session) *domain.Session {
	next := session.Clone()
	next.Path = []string{e.graph.Root()}

	if e.hooks.OnReset != nil {
		e.hooks.OnReset(ctx, &domain.ResetEvent{
			EventBase:  e.base(domain.EventReset, session.ID),
			FromNodeID: session.Current(),
			Discarded:  len(session.Path) - 1,
		})
	}
	e.logger.Debug("reset", "session_id", session.ID, "discarded", len(session.Path)-1)
	return next
}

// History maps the session path to full node records, for breadcrumb rendering.
func (e *Engine) History(session *domain.Session) []domain.Node {
	out := make([]domain.Node, 0, len(session.Path))
	for _, id := range session.Path {
		node, _ := e.graph.Node(id)
		out = append(out, node)
	}
	return out
}

// Resume checks a session obtained from outside the engine (e.g. a store) against the graph.
// Every step of the path must be an edge of the previous node.
func (e *Engine) Resume(session *domain.Session) error {
	if session == nil || len(session.Path) == 0 {
		return &domain.ConfigurationError{Issues: []string{"session path is empty"}}
	}

	var issues []string
	if session.Path[0] != e.graph.Root() {
		issues = append(issues, fmt.Sprintf("session %q starts at %q, expected root %q", session.ID, session.Path[0], e.graph.Root()))
	}

	for i, id := range session.Path {
		node, ok := e.graph.Node(id)
		if !ok {
			issues = append(issues, fmt.Sprintf("session %q: step %d references missing node %q", session.ID, i, id))
			continue
		}
		if i+1 < len(session.Path) {
			if _, ok := node.Edge(session.Path[i+1]); !ok {
				issues = append(issues, fmt.Sprintf("session %q: step %d %q -> %q is not an edge", session.ID, i, id, session.Path[i+1]))
			}
		}
	}

	if len(issues) > 0 {
		return &domain.ConfigurationError{Issues: issues}
	}
	return nil
}

func (e *Engine) base(t domain.EventType, sessionID string) domain.EventBase {
	return domain.EventBase{
		Timestamp: e.now(),
		Type:      t,
		SessionID: sessionID,
	}
}

func (e *Engine) emitNodeEnter(ctx context.Context, session *domain.Session) {
	if e.hooks.OnNodeEnter == nil {
		return
	}
	node := e.CurrentNode(session)
	e.hooks.OnNodeEnter(ctx, &domain.NodeEvent{
		EventBase: e.base(domain.EventNodeEnter, session.ID),
		NodeID:    node.ID,
		Kind:      node.Kind,
		Depth:     len(session.Path),
	})
}

func (e *Engine) emitRejected(ctx context.Context, session *domain.Session, target string) {
	if e.hooks.OnRejected == nil {
		return
	}
	e.hooks.OnRejected(ctx, &domain.RejectEvent{
		EventBase:  e.base(domain.EventRejected, session.ID),
		FromNodeID: session.Current(),
		Target:     target,
	})
}
