package attr

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Kind classifies a ParseError.
type Kind uint8

const (
	KindExpectedInt Kind = iota + 1
	KindExpectedFloat
	KindExpectedEnum
	KindInvalidColours
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindExpectedInt:
		return "expected int"
	case KindExpectedFloat:
		return "expected float"
	case KindExpectedEnum:
		return "expected enum"
	case KindInvalidColours:
		return "invalid colours"
	default:
		return "unknown"
	}
}

// Parse error sentinels, matched by errors.Is against a *ParseError of the
// corresponding kind.
var (
	ErrExpectedInt    = errors.New("expected int")
	ErrExpectedFloat  = errors.New("expected float")
	ErrExpectedEnum   = errors.New("expected enum")
	ErrInvalidColours = errors.New("invalid colours")
)

// ErrOutOfRange is wrapped by every setter validation failure.
var ErrOutOfRange = errors.New("value out of range")

// ParseError reports a recognised attribute whose value could not be decoded.
type ParseError struct {
	Kind      Kind
	Attribute string
	Value     string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s=%q", e.Kind, e.Attribute, e.Value)
	}
	return fmt.Sprintf("%s: %s=%q: %v", e.Kind, e.Attribute, e.Value, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *ParseError) Is(target error) bool {
	switch e.Kind {
	case KindExpectedInt:
		return target == ErrExpectedInt
	case KindExpectedFloat:
		return target == ErrExpectedFloat
	case KindExpectedEnum:
		return target == ErrExpectedEnum
	case KindInvalidColours:
		return target == ErrInvalidColours
	}
	return false
}

// CheckRange returns an error wrapping ErrOutOfRange if v is outside [lo, hi].
func CheckRange[T constraints.Integer](name string, v, lo, hi T) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrOutOfRange, name, lo, hi, v)
	}
	return nil
}
