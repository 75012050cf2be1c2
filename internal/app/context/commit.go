package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/logging"
)

// Commit runs the staged queue in order. When an item fails, the items that
// already finished are rolled back newest-first and the failure is returned;
// rollback errors are logged without masking it.
//
// A RequestContext commits at most once. The first call marks the queue
// committed before executing anything, so a concurrent second Commit, or a
// late AddAction, gets ErrAlreadyCommitted instead of racing the writes.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.mu.Lock()
	if rc.committed {
		rc.mu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	// The committed flag stops further appends, so the slice is stable from
	// here and execution can proceed without the lock.
	queue := rc.queue
	rc.mu.Unlock()

	logger := logging.FromContext(ctx)

	for i, item := range queue {
		logger.InfoContext(ctx, "executing staged write",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(queue)),
			slog.String("action", item.description()),
		)

		if err := item.execute(ctx); err != nil {
			logger.ErrorContext(ctx, "staged write failed, unwinding earlier writes",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", item.description()),
				slog.Any("error", err),
			)
			unwind(ctx, queue[:i], logger)
			return fmt.Errorf("executing %s: %w", item.description(), err)
		}
	}

	return nil
}

// unwind rolls completed items back in reverse order. An item whose
// rollback fails is logged and skipped so the rest still unwind.
func unwind(ctx context.Context, completed []actionItem, logger *slog.Logger) {
	for i := len(completed) - 1; i >= 0; i-- {
		item := completed[i]

		logger.InfoContext(ctx, "rolling back staged write",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.String("action", item.description()),
		)

		if err := item.rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", i+1),
				slog.String("action", item.description()),
				slog.Any("error", err),
			)
		}
	}
}
