// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so the HTTP boundary can pick a status code.
// Repositories and services never decide statuses themselves.
type Kind int

const (
	// KindNotFound — a fetch-by-id or existence check found nothing. Terminal.
	KindNotFound Kind = iota
	// KindValidation — malformed or semantically inconsistent input, rejected
	// before any persistence attempt.
	KindValidation
	// KindStore — the data store call itself failed (network, constraint,
	// malformed query). Surfaced as an upstream-dependency failure.
	KindStore
	// KindAuth — credentials or bearer token rejected.
	KindAuth
)

// Error is the typed failure outcome returned by services. Op names the
// operation for diagnostics ("create_purchase", "get_transformation", ...).
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports that the named resource does not exist.
func NotFound(op, resource, id string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: fmt.Sprintf("%s with id %s not found", resource, id)}
}

// Validation reports input that is well-formed JSON but semantically invalid.
func Validation(op, msg string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: msg}
}

// Store wraps a failed data store call, keeping the cause for logs.
func Store(op string, err error) *Error {
	return &Error{Kind: KindStore, Op: op, Message: "database operation failed", Err: err}
}

// Auth reports rejected credentials or an invalid token.
func Auth(op, msg string) *Error {
	return &Error{Kind: KindAuth, Op: op, Message: msg}
}

// StatusCode maps an error to the HTTP status the boundary should write.
// Store failures map to 504 — "upstream dependency failed", not "request was
// wrong". Unknown errors fall through to 500.
func StatusCode(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindStore:
		return http.StatusGatewayTimeout
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Envelope builds the client-facing body for err. Internal causes (Err) are
// deliberately excluded.
func Envelope(err error) *APIError {
	var e *Error
	if !errors.As(err, &e) {
		return &APIError{Error: "InternalError", Message: "internal server error"}
	}
	name := "InternalError"
	switch e.Kind {
	case KindNotFound:
		name = "ItemNotFoundError"
	case KindValidation:
		name = "ValidationError"
	case KindStore:
		name = "DatabaseError"
	case KindAuth:
		name = "AuthError"
	}
	return &APIError{Error: name, Message: e.Message}
}

// New builds a bare envelope for boundary-level errors (bad JSON, bad
// path params) that never reach the service layer.
func New(msg string) *APIError {
	return &APIError{Error: "RequestError", Message: msg}
}

// ValidationFields wraps per-field binding errors (422 responses).
type ValidationFields struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidationFields(fields map[string]string) *ValidationFields {
	return &ValidationFields{Error: "ValidationError", Message: "request validation failed", Fields: fields}
}
