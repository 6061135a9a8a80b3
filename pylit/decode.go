package pylit

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// TraceFunc observes decode operations. It receives the operation name
// and a short window of unconsumed input.
type TraceFunc func(op string, peek []byte)

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// Trace installs a sink that is called on every decode operation. The
// default is nil: no tracing, no overhead beyond one branch.
func Trace(fn TraceFunc) DecoderOption {
	return func(d *Decoder) { d.trace = fn }
}

// Decoder pulls typed values out of Python literal notation. Each Read
// method parses the grammar production for the kind the caller expects;
// Any is the self-describing fallback and Skip discards one value.
//
// A Decoder is not safe for concurrent use, and every error is terminal
// for the call that returned it: there is no resynchronization.
type Decoder struct {
	r     *PeekReader
	stack []decFrame
	trace TraceFunc
}

type decFrame struct {
	close byte
	count int // elements begun, first included
	arity int // declared tuple length; -1 when unhinted
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{r: NewPeekReader(r)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Decoder) debug(op string) {
	if d.trace == nil {
		return
	}
	peek, _ := d.r.Peek(10)
	d.trace(op, peek)
}

// skipSpace discards whitespace and #-comments (through the newline).
func (d *Decoder) skipSpace() error {
	inComment := false
	return d.r.ReadWhile(func(b byte) (bool, error) {
		if inComment {
			if b == '\n' {
				inComment = false
			}
			return true, nil
		}
		if b == '#' {
			inComment = true
			return true, nil
		}
		switch b {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return true, nil
		}
		return false, nil
	})
}

// peekByte returns the next significant byte without consuming it. ok is
// false at end of input.
func (d *Decoder) peekByte() (b byte, ok bool, err error) {
	if err := d.skipSpace(); err != nil {
		return 0, false, err
	}
	buf, err := d.r.Peek(1)
	if err != nil {
		return 0, false, err
	}
	if len(buf) == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

type detected uint8

const (
	detEOF detected = iota
	detList
	detMap
	detTuple
	detStr
	detBytes
	detBool
	detInt
	detUint
	detFloat
	detNone
	detUnknown
)

// detect classifies the next token from its first byte (numbers: a
// 32-byte window) and returns the short label used in mismatch errors.
func (d *Decoder) detect() (detected, string, error) {
	b, ok, err := d.peekByte()
	if err != nil {
		return detEOF, "", err
	}
	if !ok {
		return detEOF, "end", nil
	}
	switch {
	case b == '[':
		return detList, "list", nil
	case b == '{':
		return detMap, "map", nil
	case b == '(':
		return detTuple, "tuple", nil
	case b == '\'' || b == '"':
		return detStr, "str", nil
	case b == 'b':
		return detBytes, "bytes", nil
	case b == 'T' || b == 'F' || b == 't' || b == 'f':
		return detBool, "bool", nil
	case b == 'N':
		return detNone, "None", nil
	case b >= '0' && b <= '9' || b == '+' || b == '-':
		isFloat, err := d.peekFloat()
		if err != nil {
			return detEOF, "", err
		}
		if isFloat {
			return detFloat, "float", nil
		}
		if b == '-' {
			return detInt, "int", nil
		}
		return detUint, "int", nil
	}
	raw, err := d.r.Peek(10)
	if err != nil {
		return detEOF, "", err
	}
	return detUnknown, fmt.Sprintf("unknown type (%q)", raw), nil
}

// peekFloat reports whether the upcoming numeric token is a float: '.'
// or 'e' appears before the first non-numeric byte. 32 bytes of
// lookahead is enough to cover the longest integer plus separators.
func (d *Decoder) peekFloat() (bool, error) {
	buf, err := d.r.Peek(32)
	if err != nil {
		return false, err
	}
	for _, b := range buf {
		switch {
		case b == 'e' || b == '.':
			return true, nil
		case b >= '0' && b <= '9' || b == '_' || b == '+' || b == '-':
		default:
			return false, nil
		}
	}
	return false, nil
}

// mismatch builds the expected-vs-observed error for the token at hand.
func (d *Decoder) mismatch(expected string) error {
	_, label, err := d.detect()
	if err != nil {
		return err
	}
	return &TypeMismatchError{Expected: expected, Got: label}
}

// readNumberString consumes one numeric token: optional signs (leading
// or right after the exponent 'e'), digits, at most one 'e' and one '.',
// with '_' digit separators dropped. The caller rejects the empty
// string.
func (d *Decoder) readNumberString() (string, error) {
	if err := d.skipSpace(); err != nil {
		return "", err
	}
	var lit []byte
	hasE, hasDot := false, false
	err := d.r.ReadWhile(func(b byte) (bool, error) {
		switch {
		case b == '+' || b == '-':
			if len(lit) == 0 || lit[len(lit)-1] == 'e' {
				lit = append(lit, b)
				return true, nil
			}
			return false, nil
		case b >= '0' && b <= '9':
			lit = append(lit, b)
			return true, nil
		case b == 'e' && !hasE:
			hasE = true
			lit = append(lit, b)
			return true, nil
		case b == '.' && !hasDot && !hasE:
			hasDot = true
			lit = append(lit, b)
			return true, nil
		case b == '_':
			return true, nil
		}
		return false, nil
	})
	return string(lit), err
}

func (d *Decoder) readInt(op string, bitSize int) (int64, error) {
	d.debug(op)
	s, err := d.readNumberString()
	if err != nil {
		return 0, err
	}
	if s == "" || s == "-" || s == "+" {
		return 0, d.mismatch("number")
	}
	v, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		return 0, &NumberError{Literal: s, Err: err}
	}
	return v, nil
}

func (d *Decoder) readUint(op string, bitSize int) (uint64, error) {
	d.debug(op)
	s, err := d.readNumberString()
	if err != nil {
		return 0, err
	}
	if s == "" || s == "-" || s == "+" {
		return 0, d.mismatch("number")
	}
	// ParseUint rejects signs outright; a leading + is valid input.
	digits := s
	if digits[0] == '+' {
		digits = digits[1:]
	}
	v, err := strconv.ParseUint(digits, 10, bitSize)
	if err != nil {
		return 0, &NumberError{Literal: s, Err: err}
	}
	return v, nil
}

// Int64 decodes a signed integer.
func (d *Decoder) Int64() (int64, error) {
	return d.readInt("Int64", 64)
}

// Int32 decodes a signed integer that must fit 32 bits.
func (d *Decoder) Int32() (int32, error) {
	v, err := d.readInt("Int32", 32)
	return int32(v), err
}

// Int16 decodes a signed integer that must fit 16 bits.
func (d *Decoder) Int16() (int16, error) {
	v, err := d.readInt("Int16", 16)
	return int16(v), err
}

// Int8 decodes a signed integer that must fit 8 bits.
func (d *Decoder) Int8() (int8, error) {
	v, err := d.readInt("Int8", 8)
	return int8(v), err
}

// Uint64 decodes an unsigned integer.
func (d *Decoder) Uint64() (uint64, error) {
	return d.readUint("Uint64", 64)
}

// Uint32 decodes an unsigned integer that must fit 32 bits.
func (d *Decoder) Uint32() (uint32, error) {
	v, err := d.readUint("Uint32", 32)
	return uint32(v), err
}

// Uint16 decodes an unsigned integer that must fit 16 bits.
func (d *Decoder) Uint16() (uint16, error) {
	v, err := d.readUint("Uint16", 16)
	return uint16(v), err
}

// Uint8 decodes an unsigned integer that must fit 8 bits.
func (d *Decoder) Uint8() (uint8, error) {
	v, err := d.readUint("Uint8", 8)
	return uint8(v), err
}

// Float64 decodes a floating-point number. Floats parse even though they
// refuse to serialize.
func (d *Decoder) Float64() (float64, error) {
	d.debug("Float64")
	s, err := d.readNumberString()
	if err != nil {
		return 0, err
	}
	if s == "" || s == "-" || s == "+" {
		return 0, d.mismatch("number")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &NumberError{Literal: s, Err: err}
	}
	return v, nil
}

// Float32 decodes a floating-point number at 32-bit precision.
func (d *Decoder) Float32() (float32, error) {
	d.debug("Float32")
	s, err := d.readNumberString()
	if err != nil {
		return 0, err
	}
	if s == "" || s == "-" || s == "+" {
		return 0, d.mismatch("number")
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, &NumberError{Literal: s, Err: err}
	}
	return float32(v), nil
}

// Bool decodes True/true/False/false, or the single digits 1/0.
func (d *Decoder) Bool() (bool, error) {
	d.debug("Bool")
	if err := d.skipSpace(); err != nil {
		return false, err
	}
	buf, err := d.r.Peek(5)
	if err != nil {
		return false, err
	}
	s := string(buf)
	switch {
	case len(s) >= 4 && (s[:4] == "True" || s[:4] == "true"):
		return true, d.r.Skip(4)
	case s == "False" || s == "false":
		return false, d.r.Skip(5)
	case len(s) > 0 && s[0] == '1':
		return true, d.r.Skip(1)
	case len(s) > 0 && s[0] == '0':
		return false, d.r.Skip(1)
	}
	return false, d.mismatch("bool")
}

// None consumes a None or null token if one is next and reports whether
// it did. When it returns false the caller decodes the wrapped value.
func (d *Decoder) None() (bool, error) {
	d.debug("None")
	if err := d.skipSpace(); err != nil {
		return false, err
	}
	buf, err := d.r.Peek(4)
	if err != nil {
		return false, err
	}
	if s := string(buf); s == "None" || s == "null" {
		return true, d.r.Skip(4)
	}
	return false, nil
}

// Unit decodes the literal empty tuple.
func (d *Decoder) Unit() error {
	d.debug("Unit")
	if err := d.skipSpace(); err != nil {
		return err
	}
	buf, err := d.r.Peek(2)
	if err != nil {
		return err
	}
	if string(buf) != "()" {
		return d.mismatch("()")
	}
	return d.r.Skip(2)
}

// Str decodes a quoted string.
func (d *Decoder) Str() (string, error) {
	d.debug("Str")
	return d.readString()
}

// Char decodes a string that must hold exactly one character.
func (d *Decoder) Char() (rune, error) {
	d.debug("Char")
	s, err := d.readString()
	if err != nil {
		return 0, err
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, &TypeMismatchError{Expected: "char", Got: "str"}
	}
	return r, nil
}

// Bytes decodes a b"..." byte-string literal.
func (d *Decoder) Bytes() ([]byte, error) {
	d.debug("Bytes")
	return d.readBytes()
}

const (
	strStart = iota // before the opening quote
	strBody
	strEscape // right after a backslash
	strHex    // inside \u, \U, or \x hex digits
	strClosed
)

func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func (d *Decoder) readString() (string, error) {
	if err := d.skipSpace(); err != nil {
		return "", err
	}
	state := strStart
	var quote byte
	var out []byte
	var hexVal uint32
	var hexCount, hexWant int
	err := d.r.ReadWhile(func(b byte) (bool, error) {
		switch state {
		case strStart:
			if b == '"' || b == '\'' {
				quote = b
				state = strBody
				return true, nil
			}
			return false, nil
		case strBody:
			switch b {
			case '\\':
				state = strEscape
			case quote:
				state = strClosed
			default:
				out = append(out, b)
			}
			return true, nil
		case strEscape:
			switch b {
			case '0':
				out = append(out, 0)
			case '\\', '"', '\'':
				out = append(out, b)
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'u':
				state, hexVal, hexCount, hexWant = strHex, 0, 0, 4
				return true, nil
			case 'U':
				state, hexVal, hexCount, hexWant = strHex, 0, 0, 8
				return true, nil
			default:
				return false, &SyntaxError{What: "str", Reason: fmt.Sprintf(`unknown escape: \%c`, b)}
			}
			state = strBody
			return true, nil
		case strHex:
			v, ok := hexDigit(b)
			if !ok {
				return false, &SyntaxError{What: "str", Reason: fmt.Sprintf(`unknown hex: \%c`, b)}
			}
			hexVal = hexVal<<4 | uint32(v)
			hexCount++
			if hexCount == hexWant {
				if !utf8.ValidRune(rune(hexVal)) {
					return false, &SyntaxError{What: "str", Reason: fmt.Sprintf("not a valid scalar value: %d", hexVal)}
				}
				out = utf8.AppendRune(out, rune(hexVal))
				state = strBody
			}
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return "", err
	}
	switch state {
	case strClosed:
		if !utf8.Valid(out) {
			return "", &SyntaxError{What: "str", Reason: "not utf8"}
		}
		return string(out), nil
	case strStart:
		return "", d.mismatch("str")
	default:
		return "", &SyntaxError{What: "str", Reason: "incomplete str"}
	}
}

const (
	bytStart = iota // before the b prefix
	bytQuote        // after b, before the opening quote
	bytBody
	bytEscape
	bytHex // inside \x hex digits
	bytClosed
)

func (d *Decoder) readBytes() ([]byte, error) {
	if err := d.skipSpace(); err != nil {
		return nil, err
	}
	state := bytStart
	var quote byte
	var out []byte
	var hexVal byte
	var hexCount int
	err := d.r.ReadWhile(func(b byte) (bool, error) {
		switch state {
		case bytStart:
			if b == 'b' {
				state = bytQuote
				return true, nil
			}
			return false, nil
		case bytQuote:
			if b == '"' || b == '\'' {
				quote = b
				state = bytBody
				return true, nil
			}
			return false, nil
		case bytBody:
			switch b {
			case '\\':
				state = bytEscape
			case quote:
				state = bytClosed
			default:
				out = append(out, b)
			}
			return true, nil
		case bytEscape:
			switch b {
			case '0':
				out = append(out, 0)
			case '\\', '"', '\'':
				out = append(out, b)
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'x':
				state, hexVal, hexCount = bytHex, 0, 0
				return true, nil
			default:
				return false, &SyntaxError{What: "bytes", Reason: fmt.Sprintf(`unknown escape: \%c`, b)}
			}
			state = bytBody
			return true, nil
		case bytHex:
			v, ok := hexDigit(b)
			if !ok {
				return false, &SyntaxError{What: "bytes", Reason: fmt.Sprintf(`unknown hex: \%c`, b)}
			}
			hexVal = hexVal<<4 | v
			hexCount++
			if hexCount == 2 {
				out = append(out, hexVal)
				state = bytBody
			}
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	switch state {
	case bytClosed:
		return out, nil
	case bytStart:
		return nil, d.mismatch("bytes")
	default:
		return nil, &SyntaxError{What: "bytes", Reason: "incomplete bytes"}
	}
}

// pushBracket opens a container frame when the expected bracket is next.
func (d *Decoder) pushBracket(open, closer byte, arity int) (bool, error) {
	b, ok, err := d.peekByte()
	if err != nil {
		return false, err
	}
	if !ok || b != open {
		return false, nil
	}
	if err := d.r.Skip(1); err != nil {
		return false, err
	}
	d.stack = append(d.stack, decFrame{close: closer, arity: arity})
	return true, nil
}

// BeginList opens a sequence. Both [] and () delimiters are accepted.
func (d *Decoder) BeginList() error {
	d.debug("BeginList")
	if ok, err := d.pushBracket('[', ']', -1); err != nil || ok {
		return err
	}
	if ok, err := d.pushBracket('(', ')', -1); err != nil || ok {
		return err
	}
	return d.mismatch("list")
}

// BeginTuple opens a fixed-arity tuple; both () and [] delimiters are
// accepted. When arity is non-negative, More returns false after that
// many elements and quietly drains whatever else the input holds, so the
// closing bracket is consumed even under an arity mismatch. A negative
// arity leaves the length to the input.
func (d *Decoder) BeginTuple(arity int) error {
	d.debug("BeginTuple")
	if arity < 0 {
		arity = -1
	}
	if ok, err := d.pushBracket('(', ')', arity); err != nil || ok {
		return err
	}
	if ok, err := d.pushBracket('[', ']', arity); err != nil || ok {
		return err
	}
	return d.mismatch("tuple")
}

// BeginMap opens a map.
func (d *Decoder) BeginMap() error {
	d.debug("BeginMap")
	if ok, err := d.pushBracket('{', '}', -1); err != nil || ok {
		return err
	}
	return d.mismatch("map")
}

// BeginStruct opens a named-field struct, which shares the map syntax.
func (d *Decoder) BeginStruct() error {
	return d.BeginMap()
}

// maybePop consumes the closing bracket of the innermost container if it
// is next, popping the frame.
func (d *Decoder) maybePop() (bool, error) {
	if len(d.stack) == 0 {
		return false, nil
	}
	f := d.stack[len(d.stack)-1]
	b, ok, err := d.peekByte()
	if err != nil {
		return false, err
	}
	if !ok || b != f.close {
		return false, nil
	}
	d.stack = d.stack[:len(d.stack)-1]
	return true, d.r.Skip(1)
}

// needComma requires and consumes the comma before every element past
// the first.
func (d *Decoder) needComma() error {
	if len(d.stack) == 0 {
		return nil
	}
	f := &d.stack[len(d.stack)-1]
	first := f.count == 0
	f.count++
	if first {
		return nil
	}
	b, ok, err := d.peekByte()
	if err != nil {
		return err
	}
	if !ok || b != ',' {
		return d.mismatch("comma")
	}
	return d.r.Skip(1)
}

// More steps the open container to its next element. It returns false
// after consuming the closing bracket, tolerating one trailing comma on
// the way. Once an arity-hinted tuple has produced its declared element
// count the rest of the container is drained through the ignore path.
func (d *Decoder) More() (bool, error) {
	d.debug("More")
	if len(d.stack) > 0 {
		f := d.stack[len(d.stack)-1]
		if f.arity >= 0 && f.count == f.arity {
			return false, d.forceEnd()
		}
	}
	popped, err := d.maybePop()
	if err != nil || popped {
		return false, err
	}
	if err := d.needComma(); err != nil {
		return false, err
	}
	popped, err = d.maybePop()
	return !popped, err
}

// Colon requires and consumes the ':' between a map key and its value.
func (d *Decoder) Colon() error {
	b, ok, err := d.peekByte()
	if err != nil {
		return err
	}
	if !ok || b != ':' {
		return d.mismatch("colon")
	}
	return d.r.Skip(1)
}

// End drains whatever remains of the open container, closing bracket
// included. Callers use it after reading the elements they care about.
func (d *Decoder) End() error {
	d.debug("End")
	if len(d.stack) == 0 {
		return errors.New("pylit: End without an open container")
	}
	for {
		more, err := d.More()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		if err := d.Skip(); err != nil {
			return err
		}
	}
}

// forceEnd drains the innermost container unconditionally: stray
// elements and separators are discarded until the closing bracket has
// been consumed.
func (d *Decoder) forceEnd() error {
	if len(d.stack) == 0 {
		return errors.New("pylit: no open container to drain")
	}
	for {
		popped, err := d.maybePop()
		if err != nil {
			return err
		}
		if popped {
			return nil
		}
		b, ok, err := d.peekByte()
		if err != nil {
			return err
		}
		if ok && (b == ':' || b == ',') {
			if err := d.r.Skip(1); err != nil {
				return err
			}
			continue
		}
		if err := d.Skip(); err != nil {
			return err
		}
	}
}

// BeginVariant reads the head of a tagged variant. A '{' opens the
// one-entry map form: name is the entry's key, and the caller decodes
// the payload and then calls EndVariant. A bare quoted string names a
// payload-less variant; unit is true and no EndVariant follows.
func (d *Decoder) BeginVariant() (name string, unit bool, err error) {
	d.debug("BeginVariant")
	ok, err := d.pushBracket('{', '}', -1)
	if err != nil {
		return "", false, err
	}
	if ok {
		name, err := d.readString()
		if err != nil {
			return "", false, err
		}
		if err := d.Colon(); err != nil {
			return "", false, err
		}
		return name, false, nil
	}
	b, ok, err := d.peekByte()
	if err != nil {
		return "", false, err
	}
	if ok && (b == '"' || b == '\'') {
		name, err := d.readString()
		return name, true, err
	}
	return "", false, d.mismatch("variant")
}

// EndVariant discards anything left inside the variant's wrapping
// braces, stray extra entries included.
func (d *Decoder) EndVariant() error {
	d.debug("EndVariant")
	return d.forceEnd()
}

// Any decodes the next value with no expected type, classifying it from
// lookahead alone.
func (d *Decoder) Any() (*Value, error) {
	d.debug("Any")
	det, _, err := d.detect()
	if err != nil {
		return nil, err
	}
	switch det {
	case detList, detTuple:
		kind := KindList
		if det == detTuple {
			kind = KindTuple
		}
		if err := d.BeginList(); err != nil {
			return nil, err
		}
		var elems []*Value
		for {
			more, err := d.More()
			if err != nil {
				return nil, err
			}
			if !more {
				break
			}
			elem, err := d.Any()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return &Value{kind: kind, listVal: elems}, nil
	case detMap:
		if err := d.BeginMap(); err != nil {
			return nil, err
		}
		var entries []MapEntry
		for {
			more, err := d.More()
			if err != nil {
				return nil, err
			}
			if !more {
				break
			}
			key, err := d.Any()
			if err != nil {
				return nil, err
			}
			if err := d.Colon(); err != nil {
				return nil, err
			}
			val, err := d.Any()
			if err != nil {
				return nil, err
			}
			entries = append(entries, MapEntry{Key: key, Val: val})
		}
		return Map(entries...), nil
	case detStr:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		return Str(s), nil
	case detBytes:
		b, err := d.readBytes()
		if err != nil {
			return nil, err
		}
		return Bytes(b), nil
	case detBool:
		v, err := d.Bool()
		if err != nil {
			return nil, err
		}
		return Bool(v), nil
	case detUint:
		u, err := d.Uint64()
		if err != nil {
			return nil, err
		}
		if u <= 1<<63-1 {
			return Int(int64(u)), nil
		}
		return Uint(u), nil
	case detInt:
		i, err := d.Int64()
		if err != nil {
			return nil, err
		}
		return Int(i), nil
	case detFloat:
		f, err := d.Float64()
		if err != nil {
			return nil, err
		}
		return Float(f), nil
	case detNone:
		ok, err := d.None()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, d.detectError()
		}
		return None(), nil
	case detEOF:
		return nil, &DetectError{Prefix: ""}
	}
	return nil, d.detectError()
}

// Skip drains the next well-formed value, producing nothing. Unknown
// fields are skipped by calling it explicitly; nothing is skipped
// automatically.
func (d *Decoder) Skip() error {
	d.debug("Skip")
	det, _, err := d.detect()
	if err != nil {
		return err
	}
	switch det {
	case detList, detTuple:
		if err := d.BeginList(); err != nil {
			return err
		}
		for {
			more, err := d.More()
			if err != nil {
				return err
			}
			if !more {
				return nil
			}
			if err := d.Skip(); err != nil {
				return err
			}
		}
	case detMap:
		if err := d.BeginMap(); err != nil {
			return err
		}
		for {
			more, err := d.More()
			if err != nil {
				return err
			}
			if !more {
				return nil
			}
			if err := d.Skip(); err != nil {
				return err
			}
			if err := d.Colon(); err != nil {
				return err
			}
			if err := d.Skip(); err != nil {
				return err
			}
		}
	case detStr:
		_, err := d.readString()
		return err
	case detBytes:
		_, err := d.readBytes()
		return err
	case detBool:
		_, err := d.Bool()
		return err
	case detInt:
		_, err := d.Int64()
		return err
	case detUint:
		_, err := d.Uint64()
		return err
	case detFloat:
		_, err := d.Float64()
		return err
	case detNone:
		ok, err := d.None()
		if err != nil {
			return err
		}
		if !ok {
			return d.detectError()
		}
		return nil
	case detEOF:
		return &DetectError{Prefix: ""}
	}
	return d.detectError()
}

// detectError names the raw bytes auto-detection choked on.
func (d *Decoder) detectError() error {
	raw, err := d.r.Peek(10)
	if err != nil {
		return err
	}
	return &DetectError{Prefix: string(raw)}
}
