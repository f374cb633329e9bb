package ports

import (
	"errors"
	"fmt"
)

// FailureKind classifies a collaborator failure for retry and aggregation
// decisions.
type FailureKind string

const (
	// Transient failures (network blips, 5xx, timeouts) are retried within
	// the stage's retry budget.
	Transient FailureKind = "transient"

	// Permanent failures (bad input, 4xx, unparseable output) are not
	// retried.
	Permanent FailureKind = "permanent"

	// Unsupported marks inputs the collaborator cannot handle at all
	// (unknown media type, oversized asset). Never retried.
	Unsupported FailureKind = "unsupported"

	// Quota marks rate-limit or credit exhaustion. Retried with backoff.
	Quota FailureKind = "quota"
)

// Error is the error type every collaborator returns on failure.
type Error struct {
	Kind FailureKind
	Op   string // collaborator operation, e.g. "fetch", "generate_script"
	Err  error
}

// Error returns the formatted error message
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a collaborator error.
func NewError(kind FailureKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the failure kind from err. Unclassified errors are
// treated as transient so the retry budget, not the classification,
// decides their fate.
func KindOf(err error) FailureKind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return Transient
}

// IsRetryable reports whether err is worth retrying.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case Transient, Quota:
		return true
	}
	return false
}
