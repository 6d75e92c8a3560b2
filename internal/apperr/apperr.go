package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application error for the HTTP layer.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindAuth       Kind = "authentication"
	KindExternal   Kind = "external"
)

// Error carries a user-facing message plus an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports malformed or rejected user input.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NotFound reports a lookup miss surfaced to the user.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Authentication reports a missing or invalid session.
func Authentication(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

// External reports a failed call to an outside service (detection or
// text generation). These are never retried.
func External(msg string, err error) *Error {
	return &Error{Kind: KindExternal, Message: msg, Err: err}
}

// KindOf returns the Kind of err, or "" for errors outside the taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Status maps an error to the HTTP status code handlers respond with.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	case KindExternal:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
