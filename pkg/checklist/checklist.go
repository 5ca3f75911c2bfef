// Package checklist tracks the agent readiness gate: a fixed list of items
// checked off one by one, persisted as a single key-value blob.
package checklist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/aretw0/failtrace/internal/logging"
	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/aretw0/failtrace/pkg/ports"
)

// StoreKey is the blob key holding the checked state.
const StoreKey = "agent-checklist"

// ErrUnknownItem is returned when toggling an id that is not on the list.
var ErrUnknownItem = errors.New("unknown checklist item")

// Item is one readiness requirement.
type Item struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

// DefaultItems is the readiness gate for LLM-backed agents.
var DefaultItems = []Item{
	{ID: "sec-1", Category: "Security & Safety", Text: "Prompt Injection guardrails tested"},
	{ID: "sec-2", Category: "Security & Safety", Text: "PII redaction enabled on inputs/outputs"},
	{ID: "sec-3", Category: "Security & Safety", Text: "Rate limiting applied per user/IP"},
	{ID: "rel-1", Category: "Reliability", Text: "Fallback model configured (e.g., if Primary fails)"},
	{ID: "rel-2", Category: "Reliability", Text: "Timeout logic implemented (>30s)"},
	{ID: "rel-3", Category: "Reliability", Text: "Retry mechanism with exponential backoff"},
	{ID: "com-1", Category: "Compliance", Text: "User consent/disclaimer visible"},
	{ID: "com-2", Category: "Compliance", Text: "Audit logs for all LLM interactions"},
	{ID: "qa-1", Category: "Quality Assurance", Text: `Evaluated against "Golden Set" of queries`},
	{ID: "qa-2", Category: "Quality Assurance", Text: "Hallucination detection layer active"},
}

// State maps item ids to their checked flag.
type State map[string]bool

// Status is a snapshot of the checklist.
type Status struct {
	Checked   State `json:"checked"`
	Completed int   `json:"completed"`
	Total     int   `json:"total"`
	// Progress is the rounded completion percentage.
	Progress int `json:"progress"`
}

// Checklist reads and writes the checked state in a KVStore.
type Checklist struct {
	store  ports.KVStore
	items  []Item
	logger *slog.Logger
}

// Option configures the Checklist.
type Option func(*Checklist)

// WithItems replaces DefaultItems.
func WithItems(items ...Item) Option {
	return func(c *Checklist) {
		c.items = items
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checklist) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a checklist backed by store.
func New(store ports.KVStore, opts ...Option) *Checklist {
	c := &Checklist{
		store:  store,
		items:  DefaultItems,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Items returns every item in display order.
func (c *Checklist) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Categories returns the distinct categories in first-seen order.
func (c *Checklist) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range c.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}

// ItemsIn returns the items of one category.
func (c *Checklist) ItemsIn(category string) []Item {
	var out []Item
	for _, it := range c.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Load returns the stored state. A missing or unreadable blob yields an empty state;
// the latter is logged and overwritten on the next write.
func (c *Checklist) Load(ctx context.Context) (State, error) {
	raw, err := c.store.Get(ctx, StoreKey)
	if errors.Is(err, domain.ErrNotFound) {
		return State{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load checklist: %w", err)
	}

	state := State{}
	if err := json.Unmarshal(raw, &state); err != nil {
		c.logger.Warn("discarding corrupt checklist state", "key", StoreKey, "error", err)
		return State{}, nil
	}
	return state, nil
}

// Status loads the state and computes progress.
func (c *Checklist) Status(ctx context.Context) (Status, error) {
	state, err := c.Load(ctx)
	if err != nil {
		return Status{}, err
	}
	return c.status(state), nil
}

// Toggle flips one item and persists the state. It returns the new flag.
func (c *Checklist) Toggle(ctx context.Context, id string) (bool, error) {
	if !c.known(id) {
		return false, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}

	state, err := c.Load(ctx)
	if err != nil {
		return false, err
	}
	state[id] = !state[id]

	if err := c.save(ctx, state); err != nil {
		return false, err
	}
	c.logger.Debug("checklist item toggled", "item", id, "checked", state[id])
	return state[id], nil
}

// Reset clears every checked item.
func (c *Checklist) Reset(ctx context.Context) error {
	return c.save(ctx, State{})
}

func (c *Checklist) save(ctx context.Context, state State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode checklist: %w", err)
	}
	if err := c.store.Put(ctx, StoreKey, raw); err != nil {
		return fmt.Errorf("failed to save checklist: %w", err)
	}
	return nil
}

func (c *Checklist) known(id string) bool {
	for _, it := range c.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// status counts only ids that are still on the list.
func (c *Checklist) status(state State) Status {
	s := Status{Checked: state, Total: len(c.items)}
	for _, it := range c.items {
		if state[it.ID] {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Progress = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	return s
}
