// Package cli wires configuration, storage and the trace engine for the failtrace binary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/failtrace"
	"github.com/aretw0/failtrace/internal/config"
	"github.com/aretw0/failtrace/internal/logging"
	"github.com/aretw0/failtrace/pkg/checklist"
	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/aretw0/failtrace/pkg/observability"
	"github.com/aretw0/failtrace/pkg/ports"
	"github.com/aretw0/failtrace/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
)

// Options carries the persistent command-line flags.
// Empty fields leave the config file value in place.
type Options struct {
	ConfigPath string
	Dir        string
	LogLevel   string
}

// App is everything a command needs, built once from config and flags.
type App struct {
	Config    config.Config
	Logger    *slog.Logger
	Engine    *failtrace.Engine
	Store     ports.KVStore
	Sessions  *session.Manager
	Checklist *checklist.Checklist

	registry *prometheus.Registry
	closers  []func() error
}

// NewApp loads the configuration, opens the store and compiles the graph.
func NewApp(ctx context.Context, opts Options) (*App, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.Dir != "" {
		cfg.Graph.Dir = opts.Dir
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level)

	app := &App{
		Config:   cfg,
		Logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	metrics, err := observability.NewMetrics(app.registry)
	if err != nil {
		return nil, err
	}
	hooks := metrics.Hooks().Combine(observability.LoggingHooks(logger))

	engineOpts := []failtrace.Option{
		failtrace.WithLogger(logger),
		failtrace.WithLifecycleHooks(hooks),
	}
	if cfg.Graph.Root != "" {
		engineOpts = append(engineOpts, failtrace.WithRoot(cfg.Graph.Root))
	}
	engine, err := failtrace.New(cfg.Graph.Dir, engineOpts...)
	if err != nil {
		return nil, err
	}
	app.Engine = engine

	store, closer, err := OpenStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		app.closers = append(app.closers, closer)
	}
	if cfg.Store.Encryption.Enabled() {
		if store, err = encrypt(store, cfg.Store.Encryption); err != nil {
			if closer != nil {
				_ = closer()
			}
			return nil, err
		}
	}
	app.Store = store
	app.Sessions = session.NewManager(store, engine, session.WithLogger(logger))
	app.Checklist = checklist.New(store, checklist.WithLogger(logger))

	logger.Debug("app ready", "backend", cfg.Store.Backend, "graph", engine.Name)
	return app, nil
}

// Registry exposes the metrics registry, mostly for tests.
func (a *App) Registry() *prometheus.Registry {
	return a.registry
}

// Close flushes metrics to the configured textfile and releases the store.
func (a *App) Close() error {
	var errs []error
	if a.Config.Metrics.File != "" {
		if err := observability.WriteTextfile(a.Config.Metrics.File, a.registry); err != nil {
			errs = append(errs, err)
		}
	}
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Exit prints err and terminates the process.
// Configuration errors list every issue on its own line.
func Exit(action string, err error) {
	var cfgErr *domain.ConfigurationError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(os.Stderr, "Error %s: invalid configuration\n", action)
		for _, issue := range cfgErr.Issues {
			fmt.Fprintf(os.Stderr, "  - %s\n", issue)
		}
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", action, err)
	os.Exit(1)
}
