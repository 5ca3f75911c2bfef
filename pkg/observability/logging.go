package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/failtrace/pkg/domain"
)

// LoggingHooks logs every lifecycle event at info level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			logger.InfoContext(ctx, "node_enter",
				"session_id", e.SessionID,
				"node_id", e.NodeID,
				"kind", e.Kind,
				"depth", e.Depth,
			)
		},
		OnRejected: func(ctx context.Context, e *domain.RejectEvent) {
			logger.InfoContext(ctx, "transition_rejected",
				"session_id", e.SessionID,
				"from", e.FromNodeID,
				"target", e.Target,
			)
		},
		OnReset: func(ctx context.Context, e *domain.ResetEvent) {
			logger.InfoContext(ctx, "reset",
				"session_id", e.SessionID,
				"from", e.FromNodeID,
				"discarded", e.Discarded,
			)
		},
	}
}
