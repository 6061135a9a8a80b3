package pylit

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ============================================================
// Encoder Tests
// ============================================================

func TestEncodeScalars(t *testing.T) {
	cases := []struct {
		name string
		emit func(e *Encoder) error
		want string
	}{
		{"true", func(e *Encoder) error { return e.Bool(true) }, "True"},
		{"false", func(e *Encoder) error { return e.Bool(false) }, "False"},
		{"int", func(e *Encoder) error { return e.Int(-10) }, "-10"},
		{"uint", func(e *Encoder) error { return e.Uint(18446744073709551615) }, "18446744073709551615"},
		{"none", func(e *Encoder) error { return e.None() }, "None"},
		{"unit", func(e *Encoder) error { return e.Unit() }, "()"},
		{"str", func(e *Encoder) error { return e.Str("abc") }, `"abc"`},
		{"char", func(e *Encoder) error { return e.Char('a') }, `"a"`},
		{"bytes", func(e *Encoder) error { return e.Bytes([]byte("123")) }, `b"123"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tc.emit(NewEncoder(&buf)); err != nil {
				t.Fatalf("encode error: %v", err)
			}
			if buf.String() != tc.want {
				t.Fatalf("got %q, want %q", buf.String(), tc.want)
			}
		})
	}
}

func TestEncodeFloatRefused(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	var unsup *UnsupportedError
	if err := e.Float64(1.5); !errors.As(err, &unsup) {
		t.Fatalf("Float64 = %v, want UnsupportedError", err)
	}
	if err := e.Float32(1.5); !errors.As(err, &unsup) {
		t.Fatalf("Float32 = %v, want UnsupportedError", err)
	}
}

func TestEncodeStringEscapes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"abc", `"abc"`},
		{"", `""`},
		{"\x00\t\\\n", `"\0\t\\\n"`},
		{"\r", `"\r"`},
		// Double quote alone flips the literal to single quotes.
		{`"`, `'"'`},
		// Both quote kinds force double quotes with the escape.
		{`a"b'c`, `"a\"b'c"`},
		{"a'b", `"a'b"`},
		// Printable non-ASCII passes through raw; private use escapes.
		{"汉字abc\uf234", `"汉字abc\uf234"`},
		{"\u200b", `"\u200b"`},
		// Beyond the BMP the long escape form is used.
		{"\U00100001", `"\U00100001"`},
		{"😀", `"😀"`},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		if err := NewEncoder(&buf).Str(tc.in); err != nil {
			t.Fatalf("Str(%q) error: %v", tc.in, err)
		}
		if buf.String() != tc.want {
			t.Errorf("Str(%q) = %q, want %q", tc.in, buf.String(), tc.want)
		}
	}
}

func TestEncodeCharQuotePreference(t *testing.T) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Char('"'); err != nil {
		t.Fatalf("Char error: %v", err)
	}
	if buf.String() != `'"'` {
		t.Fatalf("Char('\"') = %q, want %q", buf.String(), `'"'`)
	}
}

func TestEncodeInvalidUTF8PassesThrough(t *testing.T) {
	// Broken sequences are not escapable as scalar values; they are
	// copied raw rather than mangled into replacement characters.
	in := "a\xffb"
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Str(in); err != nil {
		t.Fatalf("Str error: %v", err)
	}
	if got := buf.String(); got != "\"a\xffb\"" {
		t.Fatalf("Str(%q) = %q", in, got)
	}
}

func TestEncodeBytesEscapes(t *testing.T) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Bytes([]byte("123\x00\n\xff\x00")); err != nil {
		t.Fatalf("Bytes error: %v", err)
	}
	want := `b"123\0\n\xff\0"`
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestEncodeContainers(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.BeginMap(); err != nil {
		t.Fatal(err)
	}
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(e.Str("a"))
	must(e.Int(-10))
	must(e.Str("b"))
	must(e.Bool(false))
	must(e.Str("c"))
	must(e.Str("abc"))
	must(e.Str("d"))
	must(e.Bytes([]byte("123")))
	must(e.Str("e"))
	must(e.BeginTuple())
	must(e.Uint(2))
	must(e.Uint(5))
	must(e.EndTuple())
	must(e.EndMap())

	want := `{"a":-10,"b":False,"c":"abc","d":b"123","e":(2,5)}`
	if buf.String() != want {
		t.Fatalf("got  %s\nwant %s", buf.String(), want)
	}
}

func TestEncodeOneTuple(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)
	if err := e.BeginTuple(); err != nil {
		t.Fatal(err)
	}
	if err := e.Int(1); err != nil {
		t.Fatal(err)
	}
	if err := e.EndTuple(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "(1,)" {
		t.Fatalf("1-tuple = %q, want %q", buf.String(), "(1,)")
	}
}

func TestEncodeEmptyContainers(t *testing.T) {
	cases := []struct {
		name string
		emit func(e *Encoder) error
		want string
	}{
		{"list", func(e *Encoder) error {
			if err := e.BeginList(); err != nil {
				return err
			}
			return e.EndList()
		}, "[]"},
		{"tuple", func(e *Encoder) error {
			if err := e.BeginTuple(); err != nil {
				return err
			}
			return e.EndTuple()
		}, "()"},
		{"map", func(e *Encoder) error {
			if err := e.BeginMap(); err != nil {
				return err
			}
			return e.EndMap()
		}, "{}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tc.emit(NewEncoder(&buf)); err != nil {
				t.Fatalf("encode error: %v", err)
			}
			if buf.String() != tc.want {
				t.Fatalf("got %q, want %q", buf.String(), tc.want)
			}
		})
	}
}

func TestEncodeVariants(t *testing.T) {
	emit := func(name string, payload func(e *Encoder) error) string {
		t.Helper()
		var buf bytes.Buffer
		e := NewEncoder(&buf)
		if err := e.BeginVariant(name); err != nil {
			t.Fatal(err)
		}
		if err := payload(e); err != nil {
			t.Fatal(err)
		}
		if err := e.EndVariant(); err != nil {
			t.Fatal(err)
		}
		return buf.String()
	}

	if got := emit("A", func(e *Encoder) error { return e.Unit() }); got != `{"A":()}` {
		t.Errorf("unit variant = %q", got)
	}
	if got := emit("B", func(e *Encoder) error { return e.Int(1) }); got != `{"B":1}` {
		t.Errorf("newtype variant = %q", got)
	}
	got := emit("C", func(e *Encoder) error {
		if err := e.BeginTuple(); err != nil {
			return err
		}
		if err := e.Int(1); err != nil {
			return err
		}
		if err := e.Int(2); err != nil {
			return err
		}
		return e.EndTuple()
	})
	if got != `{"C":(1,2)}` {
		t.Errorf("tuple variant = %q", got)
	}
	got = emit("E", func(e *Encoder) error {
		if err := e.BeginStruct(); err != nil {
			return err
		}
		if err := e.Str("a"); err != nil {
			return err
		}
		if err := e.Int(1); err != nil {
			return err
		}
		if err := e.Str("b"); err != nil {
			return err
		}
		if err := e.Int(2); err != nil {
			return err
		}
		return e.EndStruct()
	})
	if got != `{"E":{"a":1,"b":2}}` {
		t.Errorf("struct variant = %q", got)
	}
}

func TestEncodeMisuse(t *testing.T) {
	t.Run("mismatched end", func(t *testing.T) {
		var buf bytes.Buffer
		e := NewEncoder(&buf)
		if err := e.BeginList(); err != nil {
			t.Fatal(err)
		}
		if err := e.EndTuple(); err == nil {
			t.Fatal("EndTuple closed a list")
		}
	})
	t.Run("map key without value", func(t *testing.T) {
		var buf bytes.Buffer
		e := NewEncoder(&buf)
		if err := e.BeginMap(); err != nil {
			t.Fatal(err)
		}
		if err := e.Str("k"); err != nil {
			t.Fatal(err)
		}
		if err := e.EndMap(); err == nil {
			t.Fatal("EndMap accepted a dangling key")
		}
	})
}

// ============================================================
// Pretty Mode Tests
// ============================================================

func TestPrettyList(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, Pretty())
	for _, step := range []error{e.BeginList(), e.Int(1), e.Int(2), e.EndList()} {
		if step != nil {
			t.Fatal(step)
		}
	}
	want := "[1,\n 2]"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestPrettyNestedAlignment(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, Pretty())
	steps := []error{
		e.BeginMap(),
		e.Str("k"),
		e.BeginList(),
		e.Int(1),
		e.Int(2),
		e.EndList(),
		e.EndMap(),
	}
	for _, step := range steps {
		if step != nil {
			t.Fatal(step)
		}
	}
	// The inner list's second element aligns one column past its own
	// opening bracket, which sits after the key and colon.
	want := "{\"k\":[1,\n      2]}"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestPrettyMapEntriesWrap(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, Pretty())
	steps := []error{
		e.BeginMap(),
		e.Str("a"), e.Int(1),
		e.Str("b"), e.Int(2),
		e.EndMap(),
	}
	for _, step := range steps {
		if step != nil {
			t.Fatal(step)
		}
	}
	want := "{\"a\":1,\n \"b\":2}"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestPrettyContainerKeyStaysOnOneLine(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, Pretty())
	steps := []error{
		e.BeginMap(),
		e.BeginTuple(), e.Int(1), e.Int(2), e.EndTuple(), // key
		e.Int(3), // value
		e.EndMap(),
	}
	for _, step := range steps {
		if step != nil {
			t.Fatal(step)
		}
	}
	if got := buf.String(); strings.Contains(got, "\n") {
		t.Fatalf("tuple key wrapped: %q", got)
	} else if got != "{(1,2):3}" {
		t.Fatalf("got %q, want %q", got, "{(1,2):3}")
	}
}

func TestPrettyAndCompactDecodeEqual(t *testing.T) {
	tree := Map(
		Field("xs", List(Int(1), Int(2), List(Int(3), Int(4)))),
		Field("m", Map(Entry(Int(7), Str("seven")))),
		Field("t", Tuple(Str("a"), Bytes([]byte{0, 1}))),
	)
	compact, err := Marshal(tree)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	pretty, err := MarshalPretty(tree)
	if err != nil {
		t.Fatalf("MarshalPretty error: %v", err)
	}
	a, err := Parse(compact)
	if err != nil {
		t.Fatalf("Parse compact: %v", err)
	}
	b, err := Parse(pretty)
	if err != nil {
		t.Fatalf("Parse pretty: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("compact and pretty decode differently:\n%s\n%s", compact, pretty)
	}
}
