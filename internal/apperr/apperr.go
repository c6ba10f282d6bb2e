// Package apperr defines the error taxonomy surfaced by lifecycle operations.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindState
	KindAuthorization
	KindConflict
	KindGateway
	KindPersistence
)

var kindNames = map[Kind]string{
	KindInternal:      "internal",
	KindValidation:    "validation",
	KindNotFound:      "not_found",
	KindState:         "state",
	KindAuthorization: "authorization",
	KindConflict:      "conflict",
	KindGateway:       "gateway",
	KindPersistence:   "persistence",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error is an application error carrying a user-facing message and the
// underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newf(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: cause}
}

// Validation reports bad input shape or value.
func Validation(format string, args ...any) *Error {
	return newf(KindValidation, nil, format, args...)
}

// NotFound reports an absent referenced entity.
func NotFound(format string, args ...any) *Error {
	return newf(KindNotFound, nil, format, args...)
}

// State reports an operation that is invalid for the current status.
func State(format string, args ...any) *Error {
	return newf(KindState, nil, format, args...)
}

// Authorization reports a role, ownership or assignment mismatch.
func Authorization(format string, args ...any) *Error {
	return newf(KindAuthorization, nil, format, args...)
}

// Conflict reports a violated uniqueness invariant.
func Conflict(format string, args ...any) *Error {
	return newf(KindConflict, nil, format, args...)
}

// Gateway reports a failed chain call. The request is unchanged.
func Gateway(cause error, format string, args ...any) *Error {
	return newf(KindGateway, cause, format, args...)
}

// Persistence reports a failed local commit after the chain call succeeded.
func Persistence(cause error, format string, args ...any) *Error {
	return newf(KindPersistence, cause, format, args...)
}

// Internal reports an unexpected infrastructure failure.
func Internal(cause error, format string, args ...any) *Error {
	return newf(KindInternal, cause, format, args...)
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the user-facing message of err. Errors outside the
// taxonomy never leak their text.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// HTTPStatus maps a kind to the status code used by the HTTP surface.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation, KindState:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
