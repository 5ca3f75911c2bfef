package failtrace

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/failtrace/internal/compiler"
	"github.com/aretw0/failtrace/internal/logging"
	"github.com/aretw0/failtrace/internal/runtime"
	"github.com/aretw0/failtrace/internal/validator"
	loamAdapter "github.com/aretw0/failtrace/pkg/adapters/loam"
	"github.com/aretw0/failtrace/pkg/adapters/yamlgraph"
	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/aretw0/failtrace/pkg/playbook"
	"github.com/aretw0/failtrace/pkg/ports"
)

// DefaultRoot is the root node id used when neither the caller nor the graph source names one.
const DefaultRoot = "start"

// Engine is the high-level entry point for the library.
// It compiles a graph once and wraps the runtime state machine.
type Engine struct {
	runtime *runtime.Engine
	loader  ports.GraphLoader
	root    string
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	Name    string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom GraphLoader, bypassing graph discovery.
func WithLoader(l ports.GraphLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRoot overrides the root node id.
func WithRoot(nodeID string) Option {
	return func(e *Engine) {
		e.root = nodeID
	}
}

// New compiles a graph and returns an engine over it.
//
// The graph source is chosen from dir:
//   - empty: the built-in incident triage playbook,
//   - a directory holding graph.yaml: that YAML document,
//   - any other directory: one Markdown file per node, read through Loam.
//
// An invalid graph is reported as a *domain.ConfigurationError.
func New(dir string, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if err := eng.discover(dir); err != nil {
			return nil, err
		}
	} else if dir != "" {
		eng.Name = filepath.Base(dir)
	}

	if eng.root == "" {
		eng.root = DefaultRoot
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("graph", eng.Name)
	}

	graph, err := compiler.Compile(eng.loader, eng.root)
	if err != nil {
		return nil, fmt.Errorf("failed to compile graph: %w", err)
	}
	eng.logger.Debug("graph compiled", "root", graph.Root(), "nodes", graph.Len())

	eng.runtime = runtime.NewEngine(graph,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
	)
	return eng, nil
}

func (e *Engine) discover(dir string) error {
	if dir == "" {
		loader, err := playbook.Loader()
		if err != nil {
			return err
		}
		e.loader = loader
		e.Name = "playbook"
		if e.root == "" {
			e.root = playbook.Root
		}
		return nil
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	e.Name = filepath.Base(absPath)

	graphFile := filepath.Join(absPath, yamlgraph.DefaultFile)
	if _, err := os.Stat(graphFile); err == nil {
		loader, err := yamlgraph.Load(graphFile)
		if err != nil {
			return err
		}
		e.loader = loader
		if e.root == "" {
			e.root = loader.Root()
		}
		return nil
	}

	loader, err := loamAdapter.Open(absPath)
	if err != nil {
		return err
	}
	e.loader = loader
	return nil
}

// Start creates a session at the root and triggers lifecycle hooks.
func (e *Engine) Start(ctx context.Context, sessionID string) *domain.Session {
	return e.runtime.Start(ctx, sessionID)
}

// CurrentNode returns the node at the end of the session path.
func (e *Engine) CurrentNode(session *domain.Session) domain.Node {
	return e.runtime.CurrentNode(session)
}

// Advance follows one edge of the current node.
// An invalid target returns an error wrapping domain.ErrInvalidTransition.
func (e *Engine) Advance(ctx context.Context, session *domain.Session, target string) (*domain.Session, error) {
	return e.runtime.Advance(ctx, session, target)
}

// Reset returns the session truncated to the root.
func (e *Engine) Reset(ctx context.Context, session *domain.Session) *domain.Session {
	return e.runtime.Reset(ctx, session)
}

// History returns the visited nodes in order.
func (e *Engine) History(session *domain.Session) []domain.Node {
	return e.runtime.History(session)
}

// Resume checks a session loaded from storage against the graph.
func (e *Engine) Resume(session *domain.Session) error {
	return e.runtime.Resume(session)
}

// Answer resolves free-form user input (option number, target id or label)
// against the current node and advances along the matching edge.
func (e *Engine) Answer(ctx context.Context, session *domain.Session, input string) (*domain.Session, error) {
	edge, err := runtime.Resolve(e.CurrentNode(session), input)
	if err != nil {
		return nil, err
	}
	return e.Advance(ctx, session, edge.Target)
}

// Inspect returns the full graph, sorted by node id, for visualization tools.
func (e *Engine) Inspect() []domain.Node {
	return e.runtime.Inspect()
}

// Root returns the root node id.
func (e *Engine) Root() string {
	return e.root
}

// Graph returns the compiled graph.
func (e *Engine) Graph() *domain.Graph {
	return e.runtime.Graph()
}

// Unreachable lists nodes no path from the root can reach.
func (e *Engine) Unreachable() []string {
	return validator.Unreachable(e.runtime.Graph())
}

// Loader returns the underlying GraphLoader used by the engine.
func (e *Engine) Loader() ports.GraphLoader {
	return e.loader
}
