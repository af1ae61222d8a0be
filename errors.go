package nbt

import (
	"errors"
	"fmt"
)

// ConstructionError is raised when an arithmetic or comparison operand
// cannot be coerced to the numeric primitive or array kind it needs, when
// an array operand's length does not match the receiver's, or when a List
// is given a nil element or one whose variant mismatches the list's
// element tag id. Compound keys and values are typed string and Tag, so
// Compound has no run-time check of its own. It carries a message plus an
// optional wrapped cause, so callers can still unwrap to the underlying
// error.
type ConstructionError struct {
	Msg   string
	Cause error
}

func (e *ConstructionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("nbt: construction: %s: %v", e.Msg, e.Cause)
	}
	return fmt.Sprintf("nbt: construction: %s", e.Msg)
}

func (e *ConstructionError) Unwrap() error { return e.Cause }

// DecodeError is raised by the binary codec on a truncated stream, an
// unknown tag id, or a negative length prefix. The encoder also returns it
// for a string it cannot write: one longer than 0xFFFF bytes or one that
// is not valid UTF-8.
type DecodeError struct {
	Msg   string
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("nbt: decode: %s: %v", e.Msg, e.Cause)
	}
	return fmt.Sprintf("nbt: decode: %s", e.Msg)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

func newDecodeError(msg string, cause error) error {
	return &DecodeError{Msg: msg, Cause: cause}
}

// SNBTParseError is raised by the snbt package on an unexpected token, a
// list element variant mismatch, a bad numeric suffix, an unterminated
// string, or a duplicate compound key. It carries the byte offset in the
// source text at which the problem was detected.
type SNBTParseError struct {
	Msg    string
	Offset int
	Cause  error
}

func (e *SNBTParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("nbt: snbt: %s (at offset %d): %v", e.Msg, e.Offset, e.Cause)
	}
	return fmt.Sprintf("nbt: snbt: %s (at offset %d)", e.Msg, e.Offset)
}

func (e *SNBTParseError) Unwrap() error { return e.Cause }

// ErrUnhashable is returned by Hash for composite tags (List, Compound,
// and the three Array kinds): only scalar and String tags hash, because
// only they are immutable.
var ErrUnhashable = errors.New("nbt: tag is unhashable")

// ErrTruncated is the sentinel wrapped by DecodeError when a read comes up
// short of what the grammar demands.
var ErrTruncated = errors.New("truncated")
