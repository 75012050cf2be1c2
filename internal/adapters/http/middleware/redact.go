package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/platform/logging"
)

// redactedPlaceholder replaces credential-bearing header values in logs.
const redactedPlaceholder = "[REDACTED]"

// RedactHeaders flattens an http.Header into slog attributes for debug
// logging. Values of headers in logging.SensitiveHeaders are masked;
// everything else passes through, with multi-value headers joined by
// commas.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for name, values := range headers {
		v := strings.Join(values, ",")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			v = redactedPlaceholder
		}
		attrs = append(attrs, slog.String(name, v))
	}
	return attrs
}
