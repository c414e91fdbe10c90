// Package serrors implements semantic errors: an error value that carries a
// category (Kind), an optional human message and an optional wrapped cause.
// Handlers map Kinds to HTTP status codes; callers test them with errors.Is.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is the marker interface of a semantic error category. Kinds are
// sentinels created by NewKind and compared through errors.Is.
type Kind interface {
	error
	isKind()
}

type kind struct{ name string }

func (k kind) Error() string { return k.name }
func (k kind) isKind()       {}

// NewKind creates a new category sentinel with the given name.
func NewKind(name string) Kind { return kind{name: name} }

// Common categories used across the service.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrBadRequest indicates the caller supplied invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrConflict indicates a state conflict with an existing resource.
	ErrConflict = NewKind("CONFLICT")
	// ErrRateLimited indicates the caller must back off and retry later.
	ErrRateLimited = NewKind("RATE_LIMITED")
	// ErrUnavailable indicates a dependency is temporarily unreachable.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrInternal indicates an unexpected server-side failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error: a Kind plus an optional message and wrapped
// cause. errors.Is and errors.As match against both the Kind sentinel and the
// cause chain.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds a semantic error from a kind and a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds a semantic error that wraps a concrete cause.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly builds a semantic error carrying just the category.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap exposes the wrapped cause to the errors package.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel and the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As matches target against the kind sentinel and the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the category sentinel, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the attached message, if any.
func (e *Error) Message() string { return e.msg }
