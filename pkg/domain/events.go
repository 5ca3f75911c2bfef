package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeEnter EventType = "node_enter"
	EventReset     EventType = "reset"
	EventRejected  EventType = "transition_rejected"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// NodeEvent is emitted when a session enters a node (including the root on Start).
type NodeEvent struct {
	EventBase
	NodeID string   `json:"node_id"`
	Kind   NodeKind `json:"kind"`
	Depth  int      `json:"depth"`
}

// ResetEvent is emitted when a session is truncated back to the root.
type ResetEvent struct {
	EventBase
	FromNodeID string `json:"from_node_id"`
	Discarded  int    `json:"discarded"`
}

// RejectEvent is emitted when an Advance is refused.
type RejectEvent struct {
	EventBase
	FromNodeID string `json:"from_node_id"`
	Target     string `json:"target"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnNodeEnter func(context.Context, *NodeEvent)
	OnReset     func(context.Context, *ResetEvent)
	OnRejected  func(context.Context, *RejectEvent)
}

// Combine returns hooks that call h first and then other.
func (h LifecycleHooks) Combine(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnNodeEnter: chain(h.OnNodeEnter, other.OnNodeEnter),
		OnReset:     chain(h.OnReset, other.OnReset),
		OnRejected:  chain(h.OnRejected, other.OnRejected),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
