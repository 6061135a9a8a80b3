package pylit

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the shape of a Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindStr
	KindBytes
	KindList
	KindTuple
	KindMap
)

// String returns the short type label used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindBool:
		return "bool"
	case KindInt, KindUint:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindBytes:
		return "bytes"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is the self-describing form of a decoded literal. It is what
// Decoder.Any produces and what Encoder-side callers hand to Emit when
// they have no typed binding.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	boolVal  bool
	intVal   int64
	uintVal  uint64
	floatVal float64
	strVal   string
	bytesVal []byte

	// Container values; listVal backs both lists and tuples
	listVal []*Value
	mapVal  []MapEntry
}

// MapEntry is one key-value pair of a map value. Keys are full values:
// Python dicts key on ints and tuples as well as strings.
type MapEntry struct {
	Key *Value
	Val *Value
}

// None returns the no-value singleton.
func None() *Value {
	return &Value{kind: KindNone}
}

// Bool returns a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Int returns a signed integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Uint returns an unsigned integer value. Auto-detection only produces
// this kind for magnitudes beyond int64.
func Uint(v uint64) *Value {
	return &Value{kind: KindUint, uintVal: v}
}

// Float returns a floating-point value. Floats decode but refuse to
// serialize, so a tree holding one cannot be passed back to an Encoder.
func Float(v float64) *Value {
	return &Value{kind: KindFloat, floatVal: v}
}

// Str returns a string value.
func Str(v string) *Value {
	return &Value{kind: KindStr, strVal: v}
}

// Bytes returns a byte-string value.
func Bytes(v []byte) *Value {
	return &Value{kind: KindBytes, bytesVal: v}
}

// List returns a list value.
func List(values ...*Value) *Value {
	return &Value{kind: KindList, listVal: values}
}

// Tuple returns a tuple value. An empty tuple doubles as the unit value.
func Tuple(values ...*Value) *Value {
	return &Value{kind: KindTuple, listVal: values}
}

// Map returns a map value with the given entries, in order.
func Map(entries ...MapEntry) *Value {
	return &Value{kind: KindMap, mapVal: entries}
}

// Entry pairs a key with a value for Map.
func Entry(key, val *Value) MapEntry {
	return MapEntry{Key: key, Val: val}
}

// Field pairs a field name with a value for Map; shorthand for struct
// shapes whose keys are always strings.
func Field(name string, val *Value) MapEntry {
	return MapEntry{Key: Str(name), Val: val}
}

// Kind returns the value's kind. A nil Value is None.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNone
	}
	return v.kind
}

// IsNone returns true for the no-value singleton.
func (v *Value) IsNone() bool {
	return v == nil || v.kind == KindNone
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v.Kind() != KindBool {
		return false, fmt.Errorf("pylit: expected bool, got %s", v.Kind())
	}
	return v.boolVal, nil
}

// AsInt returns the integer value as int64. Unsigned values convert when
// they fit.
func (v *Value) AsInt() (int64, error) {
	switch v.Kind() {
	case KindInt:
		return v.intVal, nil
	case KindUint:
		if v.uintVal <= 1<<63-1 {
			return int64(v.uintVal), nil
		}
		return 0, fmt.Errorf("pylit: int value %d overflows int64", v.uintVal)
	}
	return 0, fmt.Errorf("pylit: expected int, got %s", v.Kind())
}

// AsUint returns the integer value as uint64. Signed values convert when
// non-negative.
func (v *Value) AsUint() (uint64, error) {
	switch v.Kind() {
	case KindUint:
		return v.uintVal, nil
	case KindInt:
		if v.intVal >= 0 {
			return uint64(v.intVal), nil
		}
		return 0, fmt.Errorf("pylit: int value %d is negative", v.intVal)
	}
	return 0, fmt.Errorf("pylit: expected int, got %s", v.Kind())
}

// AsFloat returns the float value.
func (v *Value) AsFloat() (float64, error) {
	if v.Kind() != KindFloat {
		return 0, fmt.Errorf("pylit: expected float, got %s", v.Kind())
	}
	return v.floatVal, nil
}

// AsStr returns the string value.
func (v *Value) AsStr() (string, error) {
	if v.Kind() != KindStr {
		return "", fmt.Errorf("pylit: expected str, got %s", v.Kind())
	}
	return v.strVal, nil
}

// AsBytes returns the byte-string value.
func (v *Value) AsBytes() ([]byte, error) {
	if v.Kind() != KindBytes {
		return nil, fmt.Errorf("pylit: expected bytes, got %s", v.Kind())
	}
	return v.bytesVal, nil
}

// AsList returns the elements of a list or tuple.
func (v *Value) AsList() ([]*Value, error) {
	if k := v.Kind(); k != KindList && k != KindTuple {
		return nil, fmt.Errorf("pylit: expected list, got %s", k)
	}
	return v.listVal, nil
}

// AsMap returns the map entries.
func (v *Value) AsMap() ([]MapEntry, error) {
	if v.Kind() != KindMap {
		return nil, fmt.Errorf("pylit: expected map, got %s", v.Kind())
	}
	return v.mapVal, nil
}

// Len returns the element count for containers and strings, 0 otherwise.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindList, KindTuple:
		return len(v.listVal)
	case KindMap:
		return len(v.mapVal)
	case KindStr:
		return len(v.strVal)
	case KindBytes:
		return len(v.bytesVal)
	}
	return 0
}

// Index returns the i-th element of a list or tuple.
func (v *Value) Index(i int) (*Value, error) {
	elems, err := v.AsList()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(elems) {
		return nil, fmt.Errorf("pylit: index %d out of range (len %d)", i, len(elems))
	}
	return elems[i], nil
}

// Get returns the value for a string key of a map, or nil when absent.
func (v *Value) Get(key string) *Value {
	if v.Kind() != KindMap {
		return nil
	}
	for _, e := range v.mapVal {
		if e.Key.Kind() == KindStr && e.Key.strVal == key {
			return e.Val
		}
	}
	return nil
}

// Equal reports deep structural equality. Int and Uint compare by
// magnitude, so a round trip through the text form stays equal.
func (v *Value) Equal(o *Value) bool {
	vk, ok := v.Kind(), o.Kind()
	if vk == KindInt && ok == KindUint || vk == KindUint && ok == KindInt {
		a, err1 := v.AsUint()
		b, err2 := o.AsUint()
		return err1 == nil && err2 == nil && a == b
	}
	if vk != ok {
		return false
	}
	switch vk {
	case KindNone:
		return true
	case KindBool:
		return v.boolVal == o.boolVal
	case KindInt:
		return v.intVal == o.intVal
	case KindUint:
		return v.uintVal == o.uintVal
	case KindFloat:
		return v.floatVal == o.floatVal
	case KindStr:
		return v.strVal == o.strVal
	case KindBytes:
		return string(v.bytesVal) == string(o.bytesVal)
	case KindList, KindTuple:
		if len(v.listVal) != len(o.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(o.listVal[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.mapVal) != len(o.mapVal) {
			return false
		}
		for i := range v.mapVal {
			if !v.mapVal[i].Key.Equal(o.mapVal[i].Key) || !v.mapVal[i].Val.Equal(o.mapVal[i].Val) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value in compact literal form for debugging. Unlike
// Encoder output it also renders floats, using the fixed-vs-scientific
// rule from the IEEE-754 exponent.
func (v *Value) String() string {
	var sb strings.Builder
	v.debugRender(&sb)
	return sb.String()
}

func (v *Value) debugRender(sb *strings.Builder) {
	switch v.Kind() {
	case KindNone:
		sb.WriteString("None")
	case KindBool:
		if v.boolVal {
			sb.WriteString("True")
		} else {
			sb.WriteString("False")
		}
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.intVal, 10))
	case KindUint:
		sb.WriteString(strconv.FormatUint(v.uintVal, 10))
	case KindFloat:
		sb.WriteString(FormatFloat64(v.floatVal))
	case KindStr:
		sb.Write(appendEscapedString(nil, v.strVal))
	case KindBytes:
		sb.Write(appendEscapedBytes(nil, v.bytesVal))
	case KindList, KindTuple:
		lb, rb := byte('['), byte(']')
		if v.kind == KindTuple {
			lb, rb = '(', ')'
		}
		sb.WriteByte(lb)
		for i, e := range v.listVal {
			if i > 0 {
				sb.WriteByte(',')
			}
			e.debugRender(sb)
		}
		if v.kind == KindTuple && len(v.listVal) == 1 {
			sb.WriteByte(',')
		}
		sb.WriteByte(rb)
	case KindMap:
		sb.WriteByte('{')
		for i, e := range v.mapVal {
			if i > 0 {
				sb.WriteByte(',')
			}
			e.Key.debugRender(sb)
			sb.WriteByte(':')
			e.Val.debugRender(sb)
		}
		sb.WriteByte('}')
	}
}

// EncodeLiteral streams the value through e. Float values make it fail
// with an UnsupportedError.
func (v *Value) EncodeLiteral(e *Encoder) error {
	switch v.Kind() {
	case KindNone:
		return e.None()
	case KindBool:
		return e.Bool(v.boolVal)
	case KindInt:
		return e.Int(v.intVal)
	case KindUint:
		return e.Uint(v.uintVal)
	case KindFloat:
		return e.Float64(v.floatVal)
	case KindStr:
		return e.Str(v.strVal)
	case KindBytes:
		return e.Bytes(v.bytesVal)
	case KindList:
		if err := e.BeginList(); err != nil {
			return err
		}
		for _, elem := range v.listVal {
			if err := elem.EncodeLiteral(e); err != nil {
				return err
			}
		}
		return e.EndList()
	case KindTuple:
		if err := e.BeginTuple(); err != nil {
			return err
		}
		for _, elem := range v.listVal {
			if err := elem.EncodeLiteral(e); err != nil {
				return err
			}
		}
		return e.EndTuple()
	case KindMap:
		if err := e.BeginMap(); err != nil {
			return err
		}
		for _, entry := range v.mapVal {
			if err := entry.Key.EncodeLiteral(e); err != nil {
				return err
			}
			if err := entry.Val.EncodeLiteral(e); err != nil {
				return err
			}
		}
		return e.EndMap()
	}
	return fmt.Errorf("pylit: cannot encode kind %d", v.kind)
}

// DecodeLiteral replaces v with the next self-describing value from d.
func (v *Value) DecodeLiteral(d *Decoder) error {
	got, err := d.Any()
	if err != nil {
		return err
	}
	*v = *got
	return nil
}
