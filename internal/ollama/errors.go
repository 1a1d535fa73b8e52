package ollama

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed exchange with the inference server.
type ErrorKind int

const (
	// KindUnreachable covers connection refusal, DNS failure and timeouts.
	KindUnreachable ErrorKind = iota

	// KindUnsuccessful covers any answer other than HTTP 200, or a 200 whose
	// body could not be understood.
	KindUnsuccessful
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindUnreachable:
		return "unreachable"
	case KindUnsuccessful:
		return "unsuccessful"
	default:
		return "unknown"
	}
}

// Error is returned by every Client operation on failure.
type Error struct {
	// Op is the operation that failed, e.g. "list models".
	Op string

	// Kind tells callers whether the server answered at all.
	Kind ErrorKind

	// StatusCode is the HTTP status for KindUnsuccessful, zero otherwise.
	StatusCode int

	// Err is the underlying transport or decode error, if any.
	Err error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := fmt.Sprintf("ollama: %s: %s", e.Op, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of a Client error. ok is false for foreign errors.
func KindOf(err error) (ErrorKind, bool) {
	var oErr *Error
	if errors.As(err, &oErr) {
		return oErr.Kind, true
	}
	return 0, false
}

// IsUnreachable reports whether err means the server could not be reached.
func IsUnreachable(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindUnreachable
}

// IsUnsuccessful reports whether err means the server answered but refused.
func IsUnsuccessful(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindUnsuccessful
}

func unreachable(op string, err error) *Error {
	return &Error{Op: op, Kind: KindUnreachable, StatusCode: 0, Err: err}
}

func unsuccessful(op string, status int, err error) *Error {
	return &Error{Op: op, Kind: KindUnsuccessful, StatusCode: status, Err: err}
}
