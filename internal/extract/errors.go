package extract

import (
	"errors"
	"fmt"
)

// Kind classifies adapter failures.
type Kind string

const (
	KindMalformedDocument Kind = "MalformedDocument"
	KindRecognition       Kind = "RecognitionError"
	KindDecode            Kind = "DecodeError"
)

// Error is the failure returned by every adapter.
type Error struct {
	Kind   Kind
	Format Format
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s", e.Format, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v", e.Format, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, format Format, err error) *Error {
	return &Error{Kind: kind, Format: format, Err: err}
}

// KindOf returns the Kind carried by err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
