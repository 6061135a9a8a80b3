package pylit

import "fmt"

// TypeMismatchError reports that the next token in the input is not the
// kind the caller asked for. Got is the short label produced by
// auto-detection ("str", "map", "end", ...).
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("pylit: expect %s, got %s", e.Expected, e.Got)
}

// SyntaxError reports a malformed string or bytes literal: an unknown
// escape letter, a bad hex digit, or an unterminated literal.
type SyntaxError struct {
	What   string // "str" or "bytes"
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pylit: cannot parse %s: %s", e.What, e.Reason)
}

// NumberError wraps the strconv failure for a numeric literal that
// matched the lexical shape of a number but did not parse (overflow,
// misplaced exponent, ...).
type NumberError struct {
	Literal string
	Err     error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("pylit: invalid number %q: %v", e.Literal, e.Err)
}

func (e *NumberError) Unwrap() error { return e.Err }

// DetectError reports input that auto-detection could not classify.
// Prefix holds the raw bytes at the failure point.
type DetectError struct {
	Prefix string
}

func (e *DetectError) Error() string {
	return fmt.Sprintf("pylit: cannot auto-detect type: %q", e.Prefix)
}

// UnsupportedError reports an operation the codec refuses, such as
// serializing a floating-point value.
type UnsupportedError struct {
	Op string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("pylit: %s is not supported", e.Op)
}
