package pylit

import "io"

// PeekReader wraps an io.Reader with a lookahead buffer. Peeked bytes
// stay buffered until consumed, so the underlying reader's cursor
// advances exactly once per logical byte no matter how often a byte is
// peeked. The buffer grows to the largest outstanding peek and shrinks
// as bytes are consumed.
type PeekReader struct {
	r   io.Reader
	buf []byte // unconsumed lookahead, oldest first
	err error  // sticky source error; io.EOF marks end-of-stream
}

// NewPeekReader returns a PeekReader over r.
func NewPeekReader(r io.Reader) *PeekReader {
	return &PeekReader{r: r}
}

// Peek returns up to n upcoming bytes without consuming them. The result
// is truncated at end-of-stream rather than failing; only real source
// errors are returned. The slice is valid until the next call on the
// reader.
func (p *PeekReader) Peek(n int) ([]byte, error) {
	if err := p.fill(n); err != nil {
		return nil, err
	}
	if n > len(p.buf) {
		n = len(p.buf)
	}
	return p.buf[:n], nil
}

// fill grows the lookahead buffer to n bytes, stopping early at
// end-of-stream.
func (p *PeekReader) fill(n int) error {
	if len(p.buf) >= n || p.err != nil {
		if p.err != nil && p.err != io.EOF {
			return p.err
		}
		return nil
	}
	chunk := make([]byte, n-len(p.buf))
	m, err := io.ReadFull(p.r, chunk)
	p.buf = append(p.buf, chunk[:m]...)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		p.err = io.EOF
	} else if err != nil {
		p.err = err
		return err
	}
	return nil
}

// ReadWhile consumes bytes one at a time while pred accepts them,
// stopping at the first rejected byte (which stays unconsumed) or at
// end-of-stream. pred accumulates into caller state via its closure; a
// pred error aborts immediately.
func (p *PeekReader) ReadWhile(pred func(b byte) (bool, error)) error {
	for {
		buf, err := p.Peek(32)
		if err != nil {
			return err
		}
		if len(buf) == 0 {
			return nil
		}
		for i := 0; i < len(buf); i++ {
			ok, err := pred(buf[i])
			if err != nil {
				p.buf = p.buf[i:]
				return err
			}
			if !ok {
				p.buf = p.buf[i:]
				return nil
			}
		}
		p.buf = p.buf[len(buf):]
	}
}

// Skip discards exactly n bytes. Running out of input is an error.
func (p *PeekReader) Skip(n int) error {
	if err := p.fill(n); err != nil {
		return err
	}
	if n > len(p.buf) {
		return io.ErrUnexpectedEOF
	}
	p.buf = p.buf[n:]
	return nil
}

// Read drains the lookahead buffer before touching the source.
func (p *PeekReader) Read(out []byte) (int, error) {
	if len(out) == 0 {
		return 0, nil
	}
	n := copy(out, p.buf)
	p.buf = p.buf[n:]
	if n == len(out) {
		return n, nil
	}
	if p.err != nil {
		if n > 0 && p.err == io.EOF {
			return n, nil
		}
		return n, p.err
	}
	m, err := p.r.Read(out[n:])
	return n + m, err
}
