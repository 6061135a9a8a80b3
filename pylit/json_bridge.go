package pylit

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// Converts between JSON and Value for tooling that has to meet JSON
// halfway. The mapping is lossy by nature: tuples flatten to arrays,
// bytes become base64 strings, and integer map keys become their decimal
// spelling, since JSON keys on strings only.

// ToJSON renders v as JSON.
func ToJSON(v *Value) ([]byte, error) {
	iv, err := v.Interface()
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(iv)
	if err != nil {
		return nil, fmt.Errorf("pylit: JSON encode: %w", err)
	}
	return out, nil
}

// Interface converts v to the shape encoding/json marshals natively.
func (v *Value) Interface() (interface{}, error) {
	switch v.Kind() {
	case KindNone:
		return nil, nil
	case KindBool:
		return v.boolVal, nil
	case KindInt:
		return v.intVal, nil
	case KindUint:
		return v.uintVal, nil
	case KindFloat:
		return v.floatVal, nil
	case KindStr:
		return v.strVal, nil
	case KindBytes:
		return base64.StdEncoding.EncodeToString(v.bytesVal), nil
	case KindList, KindTuple:
		items := make([]interface{}, 0, len(v.listVal))
		for _, elem := range v.listVal {
			iv, err := elem.Interface()
			if err != nil {
				return nil, err
			}
			items = append(items, iv)
		}
		return items, nil
	case KindMap:
		m := make(map[string]interface{}, len(v.mapVal))
		for _, entry := range v.mapVal {
			key, err := jsonKey(entry.Key)
			if err != nil {
				return nil, err
			}
			iv, err := entry.Val.Interface()
			if err != nil {
				return nil, err
			}
			m[key] = iv
		}
		return m, nil
	}
	return nil, fmt.Errorf("pylit: cannot represent kind %d in JSON", v.kind)
}

func jsonKey(k *Value) (string, error) {
	switch k.Kind() {
	case KindStr:
		return k.strVal, nil
	case KindInt:
		return strconv.FormatInt(k.intVal, 10), nil
	case KindUint:
		return strconv.FormatUint(k.uintVal, 10), nil
	}
	return "", fmt.Errorf("pylit: cannot represent %s map key in JSON", k.Kind())
}

// FromJSON converts JSON bytes to a Value. Whole numbers become ints so
// they survive the trip through the literal form; fractional numbers
// become floats, which parse but refuse to re-serialize.
func FromJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("pylit: JSON parse: %w", err)
	}
	return fromJSONValue(raw)
}

func fromJSONValue(raw interface{}) (*Value, error) {
	switch val := raw.(type) {
	case nil:
		return None(), nil
	case bool:
		return Bool(val), nil
	case json.Number:
		if i, err := strconv.ParseInt(val.String(), 10, 64); err == nil {
			return Int(i), nil
		}
		if u, err := strconv.ParseUint(val.String(), 10, 64); err == nil {
			return Uint(u), nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("pylit: JSON number %q: %w", val.String(), err)
		}
		return Float(f), nil
	case string:
		return Str(val), nil
	case []interface{}:
		items := make([]*Value, 0, len(val))
		for _, elem := range val {
			v, err := fromJSONValue(elem)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return List(items...), nil
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]MapEntry, 0, len(keys))
		for _, k := range keys {
			v, err := fromJSONValue(val[k])
			if err != nil {
				return nil, err
			}
			entries = append(entries, Field(k, v))
		}
		return Map(entries...), nil
	}
	return nil, fmt.Errorf("pylit: unsupported JSON value %T", raw)
}
