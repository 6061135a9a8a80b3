package pylit

import "bytes"

// Encodable is implemented by types that can describe themselves to an
// Encoder as one scalar or container event sequence. Field and variant
// names pass through as opaque text.
type Encodable interface {
	EncodeLiteral(e *Encoder) error
}

// Decodable is implemented by types that can rebuild themselves from a
// Decoder's type-directed reads.
type Decodable interface {
	DecodeLiteral(d *Decoder) error
}

// Marshal renders v in compact literal form.
func Marshal(v Encodable) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.EncodeLiteral(NewEncoder(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalPretty renders v in line-wrapped literal form.
func MarshalPretty(v Encodable) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.EncodeLiteral(NewEncoder(&buf, Pretty())); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalString is Marshal returning a string.
func MarshalString(v Encodable) (string, error) {
	b, err := Marshal(v)
	return string(b), err
}

// Unmarshal decodes one value from data into v.
func Unmarshal(data []byte, v Decodable) error {
	return v.DecodeLiteral(NewDecoder(bytes.NewReader(data)))
}

// UnmarshalString is Unmarshal over a string.
func UnmarshalString(s string, v Decodable) error {
	return Unmarshal([]byte(s), v)
}

// Parse decodes one self-describing value from data.
func Parse(data []byte) (*Value, error) {
	return NewDecoder(bytes.NewReader(data)).Any()
}

// ParseString is Parse over a string.
func ParseString(s string) (*Value, error) {
	return Parse([]byte(s))
}
