package access

import (
	"errors"

	"clipgenie/internal/domain/plans"
)

// Kind classifies a gating failure.
type Kind string

const (
	PermissionDenied Kind = "permission_denied"
	CapacityExceeded Kind = "capacity_exceeded"
	DuplicateEntry   Kind = "duplicate_entry"
	NotFound         Kind = "not_found"
)

// Error is the single failure type returned by the plan-gated managers.
// None of these are transient; callers should not retry.
type Error struct {
	Kind Kind
	Plan plans.Plan
	// Upgrade names the plans that would grant the missing feature. PermissionDenied only.
	Upgrade string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches a bare sentinel (no message) by kind, so errors.Is(err, ErrNotFound) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Message != "" {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrPermissionDenied = &Error{Kind: PermissionDenied}
	ErrCapacityExceeded = &Error{Kind: CapacityExceeded}
	ErrDuplicateEntry   = &Error{Kind: DuplicateEntry}
	ErrNotFound         = &Error{Kind: NotFound}
)

// KindOf returns the kind of an access error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
