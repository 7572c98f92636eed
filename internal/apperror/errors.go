// Package apperror defines the error kinds the API reports to clients.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
)

// Kind classifies an Error and selects its HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindAuthentication
	KindAuthorization
	KindMalformedPayload
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindNotFound:
		return "NotFoundError"
	case KindAuthentication:
		return "AuthenticationError"
	case KindAuthorization:
		return "AuthorizationError"
	case KindMalformedPayload:
		return "MalformedPayload"
	default:
		return "InternalError"
	}
}

// Error is a client-facing failure. Only validation errors carry Errors.
type Error struct {
	Kind    Kind
	Message string
	Errors  []string
	Err     error

	pcs []uintptr
}

func newError(kind Kind, message string, err error) *Error {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	return &Error{Kind: kind, Message: message, Err: err, pcs: pcs[:n]}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindMalformedPayload:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Stack renders the call stack captured when the error was created.
func (e *Error) Stack() string {
	var b strings.Builder
	b.WriteString(e.Error())
	frames := runtime.CallersFrames(e.pcs)
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "\n    at %s (%s:%d)", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}

// Validation reports rejected input along with every violation found.
func Validation(message string, violations ...string) *Error {
	e := newError(KindValidation, message, nil)
	e.Errors = violations
	return e
}

// NotFound reports a missing resource or route.
func NotFound(message string) *Error {
	return newError(KindNotFound, message, nil)
}

// Authentication reports a missing credential.
func Authentication(message string) *Error {
	return newError(KindAuthentication, message, nil)
}

// Authorization reports a credential that is not accepted.
func Authorization(message string) *Error {
	return newError(KindAuthorization, message, nil)
}

// MalformedPayload reports a request body that could not be decoded.
func MalformedPayload(err error) *Error {
	return newError(KindMalformedPayload, "Invalid JSON payload", err)
}

// Internal wraps an unexpected failure.
func Internal(message string, err error) *Error {
	return newError(KindInternal, message, err)
}

// From returns err as an *Error, wrapping unknown errors as internal ones.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal Server Error", err)
}
