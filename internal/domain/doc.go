// Package domain holds the types shared by every graph entity: the sentinel
// errors the transport layer maps to HTTP statuses, field-level validation
// errors, and the reversible Action used to stage graph writes. The entity
// schemas themselves live in domain/graph.
package domain
