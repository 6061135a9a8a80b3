package pylit

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// Pretty enables line-wrapped output: every element past the first starts
// on a new line, aligned one column past its container's opening bracket.
// Compact and pretty forms decode to the same value.
func Pretty() EncoderOption {
	return func(e *Encoder) { e.pretty = true }
}

// Encoder streams Python literal notation to an io.Writer. Callers push
// one scalar write or begin/end pair per value event; the Encoder owns
// the comma, colon, and indent bookkeeping on a container stack.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	w       io.Writer
	pretty  bool
	col     int // column on the current output line
	keyNest int // >0 while a map key is being written; suppresses wrapping
	stack   []encFrame
}

type encFrameKind uint8

const (
	frameList encFrameKind = iota
	frameTuple
	frameMap
	frameVariant
)

type encFrame struct {
	kind   encFrameKind
	close  byte
	count  int // items written; maps count keys and values separately
	indent int // column one past the opening bracket
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	e := &Encoder{w: w}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Encoder) write(b []byte) error {
	if _, err := e.w.Write(b); err != nil {
		return fmt.Errorf("pylit: write: %w", err)
	}
	for _, c := range b {
		if c == '\n' {
			e.col = 0
		} else {
			e.col++
		}
	}
	return nil
}

func (e *Encoder) writeString(s string) error {
	return e.write([]byte(s))
}

// sep writes whatever must precede the next item of the open container:
// a comma (and, pretty mode, a newline plus re-indent) for every item
// past the first, or the colon between a map key and its value.
func (e *Encoder) sep() error {
	if len(e.stack) == 0 {
		return nil
	}
	f := &e.stack[len(e.stack)-1]
	switch f.kind {
	case frameMap:
		if f.count%2 == 1 {
			return e.writeString(":")
		}
		if f.count > 0 {
			if err := e.comma(f); err != nil {
				return err
			}
		}
		e.keyNest++
		return nil
	case frameVariant:
		return nil
	default:
		if f.count == 0 {
			return nil
		}
		return e.comma(f)
	}
}

func (e *Encoder) comma(f *encFrame) error {
	if err := e.writeString(","); err != nil {
		return err
	}
	if !e.pretty || e.keyNest > 0 {
		return nil
	}
	return e.writeString("\n" + strings.Repeat(" ", f.indent))
}

// post records that one complete item finished at the current depth.
func (e *Encoder) post() {
	if len(e.stack) == 0 {
		return
	}
	f := &e.stack[len(e.stack)-1]
	if f.kind == frameMap && f.count%2 == 0 {
		e.keyNest--
	}
	f.count++
}

func (e *Encoder) scalar(text string) error {
	if err := e.sep(); err != nil {
		return err
	}
	if err := e.writeString(text); err != nil {
		return err
	}
	e.post()
	return nil
}

// Bool writes True or False.
func (e *Encoder) Bool(v bool) error {
	if v {
		return e.scalar("True")
	}
	return e.scalar("False")
}

// Int writes a signed decimal integer.
func (e *Encoder) Int(v int64) error {
	return e.scalar(strconv.FormatInt(v, 10))
}

// Uint writes an unsigned decimal integer.
func (e *Encoder) Uint(v uint64) error {
	return e.scalar(strconv.FormatUint(v, 10))
}

// Float64 always fails: no lossless textual form is defined for floats,
// so serializing one is refused rather than silently lossy.
func (e *Encoder) Float64(v float64) error {
	return &UnsupportedError{Op: "serializing float64"}
}

// Float32 always fails, like Float64.
func (e *Encoder) Float32(v float32) error {
	return &UnsupportedError{Op: "serializing float32"}
}

// None writes the no-value token.
func (e *Encoder) None() error {
	return e.scalar("None")
}

// Unit writes the empty tuple.
func (e *Encoder) Unit() error {
	return e.scalar("()")
}

// Str writes a quoted, escaped string.
func (e *Encoder) Str(v string) error {
	return e.scalar(string(appendEscapedString(nil, v)))
}

// Char writes a one-character string.
func (e *Encoder) Char(v rune) error {
	return e.Str(string(v))
}

// Bytes writes a b"..." byte-string literal.
func (e *Encoder) Bytes(v []byte) error {
	return e.scalar(string(appendEscapedBytes(nil, v)))
}

func (e *Encoder) begin(kind encFrameKind, open string, closer byte) error {
	if err := e.sep(); err != nil {
		return err
	}
	if err := e.writeString(open); err != nil {
		return err
	}
	e.stack = append(e.stack, encFrame{kind: kind, close: closer, indent: e.col})
	return nil
}

func (e *Encoder) end(kind encFrameKind) error {
	if len(e.stack) == 0 || e.stack[len(e.stack)-1].kind != kind {
		return fmt.Errorf("pylit: container end does not match open container")
	}
	f := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	if err := e.write([]byte{f.close}); err != nil {
		return err
	}
	e.post()
	return nil
}

// BeginList opens a [] sequence.
func (e *Encoder) BeginList() error {
	return e.begin(frameList, "[", ']')
}

// EndList closes the open sequence.
func (e *Encoder) EndList() error {
	return e.end(frameList)
}

// BeginTuple opens a () tuple.
func (e *Encoder) BeginTuple() error {
	return e.begin(frameTuple, "(", ')')
}

// EndTuple closes the open tuple. A 1-tuple gains the trailing comma
// that keeps it from re-parsing as a parenthesized scalar.
func (e *Encoder) EndTuple() error {
	if len(e.stack) > 0 {
		if f := &e.stack[len(e.stack)-1]; f.kind == frameTuple && f.count == 1 {
			if err := e.writeString(","); err != nil {
				return err
			}
		}
	}
	return e.end(frameTuple)
}

// BeginMap opens a {} map. Keys and values alternate: every write at
// this depth is a key or a value by turn, and the Encoder supplies the
// colons and commas.
func (e *Encoder) BeginMap() error {
	return e.begin(frameMap, "{", '}')
}

// EndMap closes the open map.
func (e *Encoder) EndMap() error {
	if len(e.stack) > 0 {
		if f := &e.stack[len(e.stack)-1]; f.kind == frameMap && f.count%2 == 1 {
			return fmt.Errorf("pylit: map closed after a key with no value")
		}
	}
	return e.end(frameMap)
}

// BeginStruct opens a named-field struct, rendered as a map.
func (e *Encoder) BeginStruct() error {
	return e.BeginMap()
}

// EndStruct closes the open struct.
func (e *Encoder) EndStruct() error {
	return e.EndMap()
}

// BeginVariant opens a tagged variant, rendered as a one-entry map from
// the variant name to its payload. Write exactly one payload value (Unit
// for payload-less variants) and then EndVariant.
func (e *Encoder) BeginVariant(name string) error {
	if err := e.begin(frameVariant, "{", '}'); err != nil {
		return err
	}
	if err := e.write(appendEscapedString(nil, name)); err != nil {
		return err
	}
	return e.writeString(":")
}

// EndVariant closes the open variant.
func (e *Encoder) EndVariant() error {
	return e.end(frameVariant)
}

// Emit streams a whole value tree through the Encoder.
func (e *Encoder) Emit(v *Value) error {
	return v.EncodeLiteral(e)
}

// appendEscapedString appends a quoted, escaped string literal. The
// double quote is preferred; the single quote is used only when the text
// contains a double quote and no single quote. Unescaped runs are copied
// in single batches.
func appendEscapedString(dst []byte, s string) []byte {
	quote := byte('"')
	if strings.ContainsRune(s, '"') && !strings.ContainsRune(s, '\'') {
		quote = '\''
	}
	dst = append(dst, quote)
	start := 0
	for i := 0; i < len(s); {
		ch, size := utf8.DecodeRuneInString(s[i:])
		var esc string
		switch ch {
		case 0:
			esc = `\0`
		case rune(quote):
			esc = `\` + string(quote)
		case '\\':
			esc = `\\`
		case '\n':
			esc = `\n`
		case '\r':
			esc = `\r`
		case '\t':
			esc = `\t`
		default:
			if ch == utf8.RuneError && size == 1 || !needEscape(ch) {
				i += size
				continue
			}
			if ch <= 0xffff {
				esc = fmt.Sprintf(`\u%04x`, ch)
			} else {
				esc = fmt.Sprintf(`\U%08x`, ch)
			}
		}
		dst = append(dst, s[start:i]...)
		dst = append(dst, esc...)
		i += size
		start = i
	}
	dst = append(dst, s[start:]...)
	return append(dst, quote)
}

// appendEscapedBytes appends a b"..." literal. Any byte outside printable
// ASCII without a named escape becomes \xNN.
func appendEscapedBytes(dst []byte, v []byte) []byte {
	dst = append(dst, 'b', '"')
	start := 0
	for i := 0; i < len(v); i++ {
		var esc string
		switch b := v[i]; b {
		case 0:
			esc = `\0`
		case '"':
			esc = `\"`
		case '\\':
			esc = `\\`
		case '\n':
			esc = `\n`
		case '\r':
			esc = `\r`
		case '\t':
			esc = `\t`
		default:
			if b >= 0x20 && b < 0x7f {
				continue
			}
			esc = fmt.Sprintf(`\x%02x`, b)
		}
		dst = append(dst, v[start:i]...)
		dst = append(dst, esc...)
		start = i + 1
	}
	dst = append(dst, v[start:]...)
	return append(dst, '"')
}
