package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error so handlers can map it to an HTTP
// status without inspecting message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindUnauthorized
	KindNotFound
)

// AppError is an error with a client-safe message and a Kind.
// The wrapped cause, if any, is for logs only and never reaches the client.
type AppError struct {
	kind Kind
	msg  string
	err  error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *AppError) Unwrap() error { return e.err }

// Message returns the client-safe message.
func (e *AppError) Message() string { return e.msg }

// Kind returns the error classification.
func (e *AppError) Kind() Kind { return e.kind }

// Validation creates a 400-class error for malformed or missing input.
func Validation(msg string) *AppError {
	return &AppError{kind: KindValidation, msg: msg}
}

// Conflict creates a 409-class error for uniqueness violations.
func Conflict(msg string) *AppError {
	return &AppError{kind: KindConflict, msg: msg}
}

// Unauthorized creates a 401-class error for bad credentials or tokens.
func Unauthorized(msg string) *AppError {
	return &AppError{kind: KindUnauthorized, msg: msg}
}

// NotFound creates a 404-class error for absent entities.
func NotFound(msg string) *AppError {
	return &AppError{kind: KindNotFound, msg: msg}
}

// Internal wraps an unexpected error. The client sees only msg.
func Internal(msg string, err error) *AppError {
	return &AppError{kind: KindInternal, msg: msg, err: err}
}

// KindOf extracts the Kind from an error chain, defaulting to KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindInternal
}

// MessageOf extracts the client-safe message from an error chain.
// Unclassified errors get a generic message so internals never leak.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.msg
	}
	return "Internal server error"
}

// StatusCode maps an error chain to its HTTP status code.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
