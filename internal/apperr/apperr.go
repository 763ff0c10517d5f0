// ABOUTME: Typed application errors for the dolphin tracker.
// ABOUTME: Kinds cover config, JSON, IO, invalid dates and invalid exercise names.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is the category of an application error.
type Kind int

const (
	KindConfig Kind = iota
	KindJSON
	KindIO
	KindInvalidDate
	KindInvalidExercise
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindJSON:
		return "json"
	case KindIO:
		return "io"
	case KindInvalidDate:
		return "invalid_date"
	case KindInvalidExercise:
		return "invalid_exercise"
	default:
		return "unknown"
	}
}

// Error is a categorized application error.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether any error in err's chain is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}

// Config creates a configuration error.
func Config(message string, cause error) *Error {
	return &Error{Kind: KindConfig, Message: "configuration error: " + message, Cause: cause}
}

// JSON creates a serialization error.
func JSON(cause error) *Error {
	return &Error{Kind: KindJSON, Message: "json error", Cause: cause}
}

// IO creates a file I/O error for the given operation and path.
func IO(op, path string, cause error) *Error {
	return &Error{Kind: KindIO, Message: fmt.Sprintf("io error: %s %s", op, path), Cause: cause}
}

// InvalidDate creates an error naming the rejected input and the accepted forms.
func InvalidDate(input string) *Error {
	return &Error{
		Kind:    KindInvalidDate,
		Message: fmt.Sprintf("invalid date format: %q (use 'today', 'yesterday', or YYYY-MM-DD)", input),
	}
}

// InvalidExercise creates an error for an unknown exercise name.
func InvalidExercise(name string) *Error {
	return &Error{
		Kind:    KindInvalidExercise,
		Message: fmt.Sprintf("invalid exercise type: %q (use pushups, situps, or pullups)", name),
	}
}
