package llmgateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/v2"
	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
)

// translateError maps SDK and transport errors to domain errors.
//
// Gateway responses carry an [openai.Error] with the HTTP status: rejected
// credentials become ErrForbidden, malformed requests ErrValidation, and
// rate limiting or server failures ErrUnavailable. A request rejected by
// the transport's circuit breaker also becomes ErrUnavailable. Context
// cancellation passes through untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return translateStatus(apiErr)
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("gateway circuit breaker open: %w", domain.ErrUnavailable)
	}

	return err
}

// translateStatus maps a gateway API error to a domain error by status code.
func translateStatus(apiErr *openai.Error) error {
	detail := apiErr.Message
	if detail == "" {
		detail = http.StatusText(apiErr.StatusCode)
	}

	switch {
	case apiErr.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case apiErr.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	case apiErr.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected gateway status %d: %s", apiErr.StatusCode, detail)
	}
}
