// Package appctx carries the per-request write queue for LLM-assisted graph
// creation. Extracted entities are not written to Neo4j one call at a time;
// the service stages each write as a reversible action and commits the queue
// once the whole extraction is assembled, so a failed tag attachment can take
// the freshly minted person back out of the graph.
//
//	rc := appctx.FromContext(ctx)
//	rc.AddAction(&upsertNodeAction{...})   // the person node
//	rc.AddGroup(tagActions...)             // its tags, attached in parallel
//	err := rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"sync"
)

// ErrAlreadyCommitted is returned when actions are staged, or Commit is
// called again, after a RequestContext has committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil action is staged.
var ErrNilAction = errors.New("appctx: nil action")

// RequestContext is the per-request staging queue for graph writes. It
// embeds the request's context.Context, so it can stand in for one wherever
// an action needs cancellation.
//
// The AppContext middleware creates one RequestContext per HTTP request.
// Staging and Commit are safe for concurrent use, but a RequestContext must
// never outlive its request.
type RequestContext struct {
	context.Context

	mu        sync.Mutex
	queue     []actionItem
	committed bool
}

// New creates a RequestContext with an empty queue wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx}
}

// rcKey stores the RequestContext in a context.Context.
type rcKey struct{}

// WithRequestContext returns a context carrying rc. The AppContext
// middleware installs one per request.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, rcKey{}, rc)
}

// FromContext returns the RequestContext installed by the AppContext
// middleware, or nil when the request did not pass through it. Callers
// outside the HTTP path fall back to New.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(rcKey{}).(*RequestContext)
	return rc
}
