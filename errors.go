package pgpwire

import (
	"errors"
	"fmt"

	"github.com/pgpkit/pgpwire/internal/cursor"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrTruncated is returned when the input ends before a declared field.
	ErrTruncated = errors.New("input truncated")

	// ErrLengthOutOfRange is returned when a declared length cannot be
	// satisfied by the buffer or does not fit the representable range.
	ErrLengthOutOfRange = errors.New("length out of range")

	// ErrTooLong is returned when a field exceeds its type-specific maximum.
	ErrTooLong = errors.New("field too long")

	// ErrUnsupportedCombination is returned for header or version
	// combinations the wire format does not permit.
	ErrUnsupportedCombination = errors.New("unsupported combination")
)

// ErrorKind identifies the failure class of a ParseError.
type ErrorKind int

const (
	// KindTruncated: not enough bytes for a declared field.
	KindTruncated ErrorKind = iota + 1
	// KindLengthOutOfRange: a declared length cannot be satisfied.
	KindLengthOutOfRange
	// KindTooLong: a type-specific maximum was exceeded.
	KindTooLong
	// KindUnsupportedCombination: a forbidden header or version combination.
	KindUnsupportedCombination
)

func (k ErrorKind) String() string {
	switch k {
	case KindTruncated:
		return "truncated"
	case KindLengthOutOfRange:
		return "length out of range"
	case KindTooLong:
		return "too long"
	case KindUnsupportedCombination:
		return "unsupported combination"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError describes a structural failure in the input. Offset is the
// byte position at which the problem was detected, relative to the buffer
// handed to Parse. Declared and Available carry the offending length values
// where a length was involved.
type ParseError struct {
	Kind      ErrorKind
	Offset    int
	Declared  uint64
	Available uint64
	Detail    string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("pgpwire: %s at offset %d", e.Kind, e.Offset)
	if e.Declared != 0 || e.Available != 0 {
		msg += fmt.Sprintf(" (declared %d, available %d)", e.Declared, e.Available)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is implements errors.Is for sentinel error matching.
func (e *ParseError) Is(target error) bool {
	switch e.Kind {
	case KindTruncated:
		return target == ErrTruncated
	case KindLengthOutOfRange:
		return target == ErrLengthOutOfRange
	case KindTooLong:
		return target == ErrTooLong
	case KindUnsupportedCombination:
		return target == ErrUnsupportedCombination
	}
	return false
}

func truncated(offset int, declared, available uint64) *ParseError {
	return &ParseError{Kind: KindTruncated, Offset: offset, Declared: declared, Available: available}
}

// trailing reports bytes left over after a fixed-layout body was fully
// decoded. The declared body length and the consumed prefix disagree, so
// this is a length error, not truncation.
func trailing(offset, extra int) *ParseError {
	return &ParseError{
		Kind:     KindLengthOutOfRange,
		Offset:   offset,
		Declared: uint64(extra),
		Detail:   "trailing bytes after packet body",
	}
}

// wrapBounds converts a cursor bounds failure into a ParseError. Any other
// error passes through unchanged.
func wrapBounds(err error) error {
	if err == nil {
		return nil
	}
	var be *cursor.BoundsError
	if errors.As(err, &be) {
		return truncated(be.Offset, uint64(be.Need), uint64(be.Have))
	}
	return err
}
