package leadcapture

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so it can be mapped to a response.
type Kind string

const (
	KindValidation Kind = "validation_error"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal_error"
)

// StatusCode returns the HTTP status associated with the kind.
func (k Kind) StatusCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

const internalMessage = "Internal server error"

// Error is the single failure type crossing component boundaries. Err holds
// the underlying cause for logging and is never rendered to callers.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ValidationError reports rejected input. fields maps the input field name to
// the constraint it failed.
func ValidationError(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// ConflictError reports a uniqueness violation.
func ConflictError(message string, fields ...string) *Error {
	e := &Error{Kind: KindConflict, Message: message}
	if len(fields) > 0 {
		e.Fields = make(map[string]string, len(fields))
		for _, f := range fields {
			e.Fields[f] = message
		}
	}
	return e
}

// NotFoundError reports a missing entity.
func NotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// InternalError wraps an unexpected failure behind a generic message.
func InternalError(err error) *Error {
	return &Error{Kind: KindInternal, Message: internalMessage, Err: err}
}

// KindOf returns the kind of err, or KindInternal if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
