package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Sentinel errors label failures for errors.Is checks at the transport
// boundary, where each maps to one HTTP status.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// MsgRequired is the shared message for missing required fields, so
// "name: required" reads the same for a Person as for a Tag.
const MsgRequired = "required"

// ValidationError carries field-level failures from entity validation.
// errors.Is(err, ErrValidation) matches it; errors.As exposes Fields for
// per-field detail in problem responses.
type ValidationError struct {
	Fields map[string]string
}

// Error lists the failed fields in sorted order so the same failure always
// renders the same message.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
