// Package serrors carries semantic error kinds from services to the HTTP
// layer. Services return errors built with With or Wrap; handlers translate
// them into a status code and a message that is safe to show to callers.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a semantic error category. Only values created by NewKind implement it.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind returns a new comparable Kind sentinel.
func NewKind(name string) Kind { return kind{s: name} }

var (
	ErrNotFound     = NewKind("NOT_FOUND")
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	ErrForbidden    = NewKind("FORBIDDEN")
	ErrBadRequest   = NewKind("BAD_REQUEST")
	ErrConflict     = NewKind("CONFLICT")
	ErrInternal     = NewKind("INTERNAL")
	ErrTimeout      = NewKind("TIMEOUT")
	ErrUnavailable  = NewKind("UNAVAILABLE")
	ErrRateLimited  = NewKind("RATE_LIMITED")
)

// statuses maps every default kind to the HTTP status it is reported with.
var statuses = map[Kind]int{ //nolint: gochecknoglobals
	ErrNotFound:     http.StatusNotFound,
	ErrUnauthorized: http.StatusUnauthorized,
	ErrForbidden:    http.StatusForbidden,
	ErrBadRequest:   http.StatusBadRequest,
	ErrConflict:     http.StatusConflict,
	ErrInternal:     http.StatusInternalServerError,
	ErrTimeout:      http.StatusGatewayTimeout,
	ErrUnavailable:  http.StatusServiceUnavailable,
	ErrRateLimited:  http.StatusTooManyRequests,
}

// Error is a Kind plus an optional cause and message.
//
// errors.Is and errors.As match both the kind and anything in the cause chain.
// Error() renders "<msg>: <cause>", "<msg>", "<cause>" or the kind name,
// depending on which parts are set.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds an error of kind k with a formatted message and no cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds an error of kind k wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly builds an error that only carries k.
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

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.err != nil && errors.Is(e.err, target))
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.err != nil && errors.As(e.err, target))
}

func (e *Error) Kind() Kind      { return e.kind }
func (e *Error) Message() string { return e.msg }
func (e *Error) Cause() error    { return e.err }

// KindOf returns the first Kind found in err's chain, or ErrInternal.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// Status returns the HTTP status for err's kind. Unknown kinds are 500.
func Status(err error) int {
	if s, ok := statuses[KindOf(err)]; ok {
		return s
	}

	return http.StatusInternalServerError
}

// PublicMessage returns the text that can be returned to API callers.
// Internal errors never leak their cause; other kinds return the outermost
// serrors message, falling back to a generic text per kind.
func PublicMessage(err error) string {
	k := KindOf(err)
	if k == ErrInternal {
		return "internal error"
	}

	var se *Error
	if errors.As(err, &se) && se.msg != "" {
		return se.msg
	}

	switch k {
	case ErrNotFound:
		return "resource not found"
	case ErrUnauthorized:
		return "unauthorized"
	case ErrForbidden:
		return "forbidden"
	case ErrBadRequest:
		return "bad request"
	case ErrConflict:
		return "conflict"
	case ErrTimeout:
		return "request timed out"
	case ErrUnavailable:
		return "service unavailable"
	case ErrRateLimited:
		return "too many requests"
	default:
		return "internal error"
	}
}
