package pylit

import (
	"errors"
	"testing"
)

// ============================================================
// Value Tests
// ============================================================

func TestValueAccessors(t *testing.T) {
	if v, err := Bool(true).AsBool(); err != nil || !v {
		t.Errorf("AsBool = %v, %v", v, err)
	}
	if v, err := Int(-3).AsInt(); err != nil || v != -3 {
		t.Errorf("AsInt = %v, %v", v, err)
	}
	if v, err := Str("s").AsStr(); err != nil || v != "s" {
		t.Errorf("AsStr = %v, %v", v, err)
	}
	if v, err := Bytes([]byte{1}).AsBytes(); err != nil || len(v) != 1 {
		t.Errorf("AsBytes = %v, %v", v, err)
	}
	if v, err := Float(2.5).AsFloat(); err != nil || v != 2.5 {
		t.Errorf("AsFloat = %v, %v", v, err)
	}
	if _, err := Int(1).AsStr(); err == nil {
		t.Error("AsStr on an int did not fail")
	}
}

func TestValueIntUintCrossFit(t *testing.T) {
	if v, err := Uint(7).AsInt(); err != nil || v != 7 {
		t.Errorf("Uint(7).AsInt = %v, %v", v, err)
	}
	if _, err := Uint(1 << 63).AsInt(); err == nil {
		t.Error("huge Uint converted to int64")
	}
	if v, err := Int(7).AsUint(); err != nil || v != 7 {
		t.Errorf("Int(7).AsUint = %v, %v", v, err)
	}
	if _, err := Int(-1).AsUint(); err == nil {
		t.Error("negative Int converted to uint64")
	}
}

func TestValueContainers(t *testing.T) {
	l := List(Int(1), Int(2))
	if l.Len() != 2 {
		t.Fatalf("Len = %d", l.Len())
	}
	if v, err := l.Index(1); err != nil {
		t.Fatal(err)
	} else if got, _ := v.AsInt(); got != 2 {
		t.Fatalf("Index(1) = %s", v)
	}
	if _, err := l.Index(2); err == nil {
		t.Error("Index out of range did not fail")
	}

	// Tuples answer AsList too.
	if _, err := Tuple(Int(1)).AsList(); err != nil {
		t.Errorf("Tuple.AsList = %v", err)
	}

	m := Map(Field("a", Int(1)), Entry(Int(2), Str("two")))
	if got := m.Get("a"); got == nil || got.Kind() != KindInt {
		t.Errorf("Get(a) = %s", got)
	}
	if got := m.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %s", got)
	}
}

func TestValueNilIsNone(t *testing.T) {
	var v *Value
	if !v.IsNone() || v.Kind() != KindNone {
		t.Fatalf("nil Value: IsNone=%v Kind=%v", v.IsNone(), v.Kind())
	}
}

func TestValueEqual(t *testing.T) {
	cases := []struct {
		a, b *Value
		want bool
	}{
		{None(), None(), true},
		{None(), Bool(false), false},
		{Int(5), Int(5), true},
		{Int(5), Int(6), false},
		// Int and Uint compare by magnitude.
		{Int(5), Uint(5), true},
		{Int(-5), Uint(5), false},
		{Str("a"), Str("a"), true},
		{List(Int(1)), List(Int(1)), true},
		{List(Int(1)), Tuple(Int(1)), false},
		{Map(Field("k", Int(1))), Map(Field("k", Int(1))), true},
		{Map(Field("k", Int(1))), Map(Field("k", Int(2))), false},
	}
	for _, tc := range cases {
		if got := tc.a.Equal(tc.b); got != tc.want {
			t.Errorf("%s.Equal(%s) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		in   *Value
		want string
	}{
		{None(), "None"},
		{Bool(true), "True"},
		{Int(-3), "-3"},
		{Float(1.5), "1.5"},
		{Float(3), "3."},
		{Str("a"), `"a"`},
		{Bytes([]byte{0xff}), `b"\xff"`},
		{List(Int(1), Int(2)), "[1,2]"},
		{Tuple(Int(1)), "(1,)"},
		{Tuple(), "()"},
		{Map(Field("k", List())), `{"k":[]}`},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestValueRoundTrip(t *testing.T) {
	trees := []*Value{
		None(),
		Bool(false),
		Int(-42),
		Uint(18446744073709551615),
		Str("quotes \" and ' and 汉字"),
		Bytes([]byte{0, 1, 0xfe, 0xff}),
		List(),
		Tuple(Int(1)),
		List(Int(1), List(Int(2), Tuple()), None()),
		Map(
			Field("xs", List(Int(1), Int(2))),
			Entry(Int(7), Str("seven")),
			Entry(Tuple(Int(1), Int(2)), Bool(true)),
		),
	}
	for _, tree := range trees {
		text, err := MarshalString(tree)
		if err != nil {
			t.Errorf("Marshal(%s) error: %v", tree, err)
			continue
		}
		back, err := ParseString(text)
		if err != nil {
			t.Errorf("Parse(%s) error: %v", text, err)
			continue
		}
		if !back.Equal(tree) {
			t.Errorf("round trip of %s via %s gave %s", tree, text, back)
		}
	}
}

func TestValueFloatRefusesEncode(t *testing.T) {
	_, err := Marshal(List(Float(1.5)))
	var unsup *UnsupportedError
	if !errors.As(err, &unsup) {
		t.Fatalf("Marshal of a float tree = %v, want UnsupportedError", err)
	}
}
