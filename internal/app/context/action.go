package appctx

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/logging"
)

// actionItem is one slot in the commit queue: either a single action or a
// group that runs in parallel.
type actionItem interface {
	execute(ctx context.Context) error
	rollback(ctx context.Context) error
	description() string
}

// AddAction stages one action for the next Commit. Returns ErrNilAction for
// a nil action and ErrAlreadyCommitted once the queue has committed.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return rc.enqueue(&singleAction{action: action})
}

// AddGroup stages a set of independent actions that Commit runs in
// parallel. The group succeeds only if every member does; on the first
// failure the remaining members are canceled and the finished ones are
// rolled back. Returns ErrNilAction if any action is nil and
// ErrAlreadyCommitted once the queue has committed.
func (rc *RequestContext) AddGroup(actions ...domain.Action) error {
	for _, a := range actions {
		if a == nil {
			return ErrNilAction
		}
	}
	return rc.enqueue(&actionGroup{actions: actions})
}

func (rc *RequestContext) enqueue(item actionItem) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.queue = append(rc.queue, item)
	return nil
}

type singleAction struct {
	action domain.Action
}

func (s *singleAction) execute(ctx context.Context) error  { return s.action.Execute(ctx) }
func (s *singleAction) rollback(ctx context.Context) error { return s.action.Rollback(ctx) }
func (s *singleAction) description() string                { return s.action.Description() }

// actionGroup runs its members concurrently. Members must not depend on one
// another; tag attachments to an already-staged person are the typical case.
type actionGroup struct {
	actions []domain.Action

	// members that finished Execute without error, in staging order
	completed []domain.Action
}

func (g *actionGroup) execute(ctx context.Context) error {
	if len(g.actions) == 0 {
		return nil
	}

	groupCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make([]error, len(g.actions))
	var wg sync.WaitGroup
	for i, action := range g.actions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := action.Execute(groupCtx); err != nil {
				errs[i] = err
				// First failure aborts the rest of the group.
				cancel()
			}
		}()
	}
	wg.Wait()

	g.completed = nil
	var firstErr error
	for i, err := range errs {
		switch {
		case err == nil:
			g.completed = append(g.completed, g.actions[i])
		case firstErr == nil:
			firstErr = err
		}
	}

	if firstErr != nil {
		g.rollbackCompleted(ctx)
		return firstErr
	}
	return nil
}

// rollback undoes the members that succeeded. Called by Commit when a later
// queue item fails; the failing-group case already rolled itself back inside
// execute.
func (g *actionGroup) rollback(ctx context.Context) error {
	g.rollbackCompleted(ctx)
	return nil
}

// rollbackCompleted reverses finished members in reverse staging order.
// A member whose Rollback fails is logged and skipped so the rest still
// unwind.
func (g *actionGroup) rollbackCompleted(ctx context.Context) {
	logger := logging.FromContext(ctx)
	for i := len(g.completed) - 1; i >= 0; i-- {
		action := g.completed[i]
		if err := action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed inside action group",
				slog.String("operation", "ActionGroup.rollback"),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
		}
	}
	g.completed = nil
}

func (g *actionGroup) description() string {
	switch len(g.actions) {
	case 0:
		return "empty action group"
	case 1:
		return g.actions[0].Description()
	default:
		return fmt.Sprintf("action group (%d actions: %s, ...)", len(g.actions), g.actions[0].Description())
	}
}
