package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and controllers.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// TransportError wraps a network-level failure reaching an upstream domain.
// Adapters retry these through their fallback route chains before surfacing
// them; listings swallow them entirely (fail-soft).
type TransportError struct {
	Domain EventDomain
	Op     string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Domain, e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError marks a single upstream record as malformed (missing a
// required field during normalization). It is isolated to the record: the
// record is logged and dropped, siblings are unaffected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record: %s %s", e.Field, e.Reason)
}

// ConflictError is a backend rejection of an otherwise well-formed operation,
// such as a duplicate join. It surfaces to the caller verbatim; no fallback
// route is attempted for it.
type ConflictError struct {
	Op     string
	Detail string
}

func (e *ConflictError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: conflict", e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
