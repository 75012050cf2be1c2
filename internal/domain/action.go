package domain

import "context"

// Action is one reversible graph write. The LLM extraction flow stages
// actions instead of writing directly so a failure partway through a
// multi-write operation can undo the writes that already landed.
type Action interface {
	// Execute performs the write. Implementations respect the context's
	// cancellation and deadline.
	Execute(ctx context.Context) error

	// Rollback reverses a successful Execute. It is never called unless
	// Execute returned nil, and it may receive a different context than
	// Execute did.
	Rollback(ctx context.Context) error

	// Description identifies the action in logs, e.g. `attach tag "golang"`.
	Description() string
}
