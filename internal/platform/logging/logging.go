// Package logging builds the service's structured loggers on log/slog and
// carries them through contexts.
//
// Construction and propagation:
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Application services log errors with the operation name, the entity
// identifiers involved, and the full error chain:
//
//	logger.ErrorContext(ctx, "failed to upsert person",
//	    slog.String("operation", "UpsertPerson"),
//	    slog.String("uid", uid),
//	    slog.Any("error", err),
//	)
//
// The logging middleware stores a request-tagged child logger in the
// context, so request_id and correlation_id arrive for free. Every
// handler built here masks credentials through the masq layer in
// redact_handler.go.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// New builds a *slog.Logger writing to w.
//
// level is one of "debug", "info", "warn", or "error" (case-insensitive);
// anything else falls back to info. format selects "text" or "json"
// output, defaulting to JSON. Debug level additionally stamps source
// locations on every record.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// loggerKey keys context-stored loggers.
type loggerKey struct{}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the context's logger, or slog.Default() when none
// was stored. Callers never get nil.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
