// Package pylit implements a streaming codec for Python literal notation.
//
// The wire form is valid Python source: tuples, lists, dicts, quoted
// strings with escapes, byte-string literals, True/False/None, and
// decimal integers. It is meant for tooling that exchanges data with
// Python programs, or with humans who want to read and edit the payload,
// while keeping the precision of a typed codec.
//
// # Data Model
//
// Scalars: bool, int, uint, float (decode only), str, char, bytes, None
// Containers: list, tuple (fixed arity), map, struct (named fields)
// Special: tagged variants, rendered as a one-entry map
//
// # Syntax
//
//	Unit:      ()
//	Bool:      True / False (also true / false / 1 / 0 on input)
//	None:      None (also null on input)
//	List:      [1,2,3]
//	Tuple:     (1,2,3)     a 1-tuple is written (1,) to stay unambiguous
//	Map:       {"a":1,"b":2}
//	Variant:   {"Name":payload} or a bare "Name" for payload-less variants
//	String:    "text" or 'text', with \0 \\ \n \r \t \uXXXX \UXXXXXXXX
//	Bytes:     b"raw" with \xNN for anything outside printable ASCII
//	Comment:   # skipped through end of line, anywhere between tokens
//
// Trailing commas are tolerated on input. Floats parse but do not
// serialize: no lossless textual form is defined for them, so the
// Encoder refuses them and round-tripping is exact for everything else.
//
// # Decoding
//
// Decoding is type-directed: the caller asks the Decoder for the kind it
// expects and the matching grammar production is parsed directly, without
// building an intermediate tree. Decoder.Any is the self-describing
// fallback; it classifies the next token from one byte of lookahead
// (numbers: a 32-byte window) and produces a Value.
//
//	d := pylit.NewDecoder(r)
//	if err := d.BeginMap(); err != nil { ... }
//	for {
//		ok, err := d.More()
//		if err != nil || !ok { break }
//		key, _ := d.Str()
//		_ = d.Colon()
//		// read the value with the kind the field calls for
//	}
//
// Decoder.Skip drains one well-formed value producing nothing, which is
// how callers step over fields they do not recognize.
//
// # Encoding
//
//	e := pylit.NewEncoder(w)
//	e.BeginMap()
//	e.Str("a")
//	e.Int(-10)
//	e.EndMap()
//
// The Encoder keeps separator and indent bookkeeping on a container
// stack; the Pretty option wraps every element past the first onto a new
// line aligned one column past the container's opening bracket.
package pylit
