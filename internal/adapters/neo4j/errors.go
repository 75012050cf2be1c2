package neo4j

import (
	"errors"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"

	"github.com/jsamuelsen11/knowledge-graph-service/internal/domain"
)

// Neo4j status codes and code prefixes that map onto domain sentinels.
const (
	codeConstraintFailed = "Neo.ClientError.Schema.ConstraintValidationFailed"
	prefixStatementError = "Neo.ClientError.Statement"
	prefixSecurityError  = "Neo.ClientError.Security"
	prefixTransientError = "Neo.TransientError"
)

// translateError maps driver and server errors to domain errors so callers
// can branch with errors.Is. Constraint violations become ErrConflict,
// statement errors ErrValidation, security rejections ErrForbidden, and
// transient states or connectivity failures ErrUnavailable. Anything else
// passes through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var serverErr *db.Neo4jError
	if errors.As(err, &serverErr) {
		switch {
		case serverErr.Code == codeConstraintFailed:
			return fmt.Errorf("%s: %w", serverErr.Msg, domain.ErrConflict)
		case strings.HasPrefix(serverErr.Code, prefixStatementError):
			return fmt.Errorf("%s: %w", serverErr.Msg, domain.ErrValidation)
		case strings.HasPrefix(serverErr.Code, prefixSecurityError):
			return fmt.Errorf("%s: %w", serverErr.Msg, domain.ErrForbidden)
		case strings.HasPrefix(serverErr.Code, prefixTransientError):
			return fmt.Errorf("%s: %w", serverErr.Msg, domain.ErrUnavailable)
		default:
			return err
		}
	}

	if neo4j.IsConnectivityError(err) {
		return fmt.Errorf("graph store unreachable: %v: %w", err, domain.ErrUnavailable)
	}

	return err
}
