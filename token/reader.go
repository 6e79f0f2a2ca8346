package token

import (
	"fmt"
	"io"
)

const (
	readChunk    = 4096
	compactAfter = 2 * readChunk
)

// Reader is a character-level JSON lexer over an io.Reader or a byte
// slice. It buffers input as needed; the consumed prefix is discarded at
// token boundaries unless a recording is active, in which case the bytes
// from the earliest mark onward are retained so Rewind can replay them.
type Reader struct {
	rd  io.Reader
	buf []byte
	pos int
	off int // absolute offset of buf[0] in the stream
	eof bool

	marks int // active recordings; compaction is disabled when > 0
}

func NewReader(r io.Reader) *Reader {
	return &Reader{rd: r}
}

func NewReaderBytes(d []byte) *Reader {
	return &Reader{buf: d, eof: true}
}

func (r *Reader) readMore() error {
	if r.eof {
		return ErrShortRead
	}
	chunk := make([]byte, readChunk)
	for {
		n, err := r.rd.Read(chunk)
		if n > 0 {
			r.buf = append(r.buf, chunk[:n]...)
		}
		if err == io.EOF {
			r.eof = true
			if n == 0 {
				return ErrShortRead
			}
			return nil
		}
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
	}
}

func (r *Reader) readByte() (byte, error) {
	for r.pos >= len(r.buf) {
		if err := r.readMore(); err != nil {
			return 0, err
		}
	}
	c := r.buf[r.pos]
	r.pos++
	return c, nil
}

// Retract pushes back the last byte read. At most one byte may be
// retracted between reads.
func (r *Reader) Retract() {
	if r.pos == 0 {
		panic("token: Retract at start of buffer")
	}
	r.pos--
}

func (r *Reader) compact() {
	if r.marks > 0 || r.pos < compactAfter {
		return
	}
	r.off += r.pos
	r.buf = r.buf[:copy(r.buf, r.buf[r.pos:])]
	r.pos = 0
}

// NextToken skips whitespace and consumes the next byte.
func (r *Reader) NextToken() (byte, error) {
	r.compact()
	for {
		c, err := r.readByte()
		if err != nil {
			return 0, err
		}
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return c, nil
	}
}

// Peek returns the next non-whitespace byte without consuming it.
func (r *Reader) Peek() (byte, error) {
	c, err := r.NextToken()
	if err != nil {
		return 0, err
	}
	r.pos--
	return c, nil
}

// Expect consumes the next non-whitespace byte and fails unless it is
// want.
func (r *Reader) Expect(want byte) error {
	c, err := r.NextToken()
	if err != nil {
		return err
	}
	if c != want {
		return fmt.Errorf("expected '%c', got '%c'", want, c)
	}
	return nil
}

func (r *Reader) word(rest string) error {
	for i := 0; i < len(rest); i++ {
		c, err := r.readByte()
		if err != nil {
			return err
		}
		if c != rest[i] {
			return fmt.Errorf("%w: got '%c', want '%c'", ErrBadLiteral, c, rest[i])
		}
	}
	return nil
}

// ReadBool consumes a true or false literal.
func (r *Reader) ReadBool() (bool, error) {
	c, err := r.NextToken()
	if err != nil {
		return false, err
	}
	switch c {
	case 't':
		return true, r.word("rue")
	case 'f':
		return false, r.word("alse")
	}
	return false, fmt.Errorf("%w: expected true or false", ErrBadLiteral)
}

// ReadNull consumes a null literal.
func (r *Reader) ReadNull() error {
	if err := r.Expect('n'); err != nil {
		return err
	}
	return r.word("ull")
}

// ReadString consumes a JSON string token, quotes included, and returns
// its unescaped value.
func (r *Reader) ReadString() (string, error) {
	if err := r.Expect('"'); err != nil {
		return "", err
	}
	raw, err := r.rawStringBody()
	if err != nil {
		return "", err
	}
	return unescape(raw)
}

// rawStringBody scans to the closing quote and returns the raw bytes in
// between. The opening quote must already be consumed.
func (r *Reader) rawStringBody() (string, error) {
	start := r.pos
	esc := false
	for {
		for r.pos >= len(r.buf) {
			if err := r.readMore(); err != nil {
				return "", err
			}
		}
		c := r.buf[r.pos]
		r.pos++
		if esc {
			esc = false
			continue
		}
		switch c {
		case '\\':
			esc = true
		case '"':
			return string(r.buf[start : r.pos-1]), nil
		default:
			if c < 0x20 {
				return "", fmt.Errorf("%w: unescaped control character in string", ErrBadLiteral)
			}
		}
	}
}

// ReadNumber consumes a numeric literal and returns its raw text. The
// text is validated only to the extent of its character set; callers
// parse it into their numeric kind.
func (r *Reader) ReadNumber() (string, error) {
	c, err := r.NextToken()
	if err != nil {
		return "", err
	}
	if c != '-' && (c < '0' || c > '9') {
		return "", fmt.Errorf("%w: unexpected character %q in number", ErrBadLiteral, string(c))
	}
	start := r.pos - 1
	for {
		if r.pos >= len(r.buf) {
			if err := r.readMore(); err != nil {
				if err == ErrShortRead {
					break
				}
				return "", err
			}
			continue
		}
		if !numberByte(r.buf[r.pos]) {
			break
		}
		r.pos++
	}
	if r.pos == start+1 && c == '-' {
		return "", fmt.Errorf("%w: lone minus sign", ErrBadLiteral)
	}
	return string(r.buf[start:r.pos]), nil
}

func numberByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E':
		return true
	}
	return false
}

// FirstField reports whether an object whose '{' was just consumed has at
// least one entry, leaving the reader positioned at the first key.
func (r *Reader) FirstField() (bool, error) {
	c, err := r.NextToken()
	if err != nil {
		return false, err
	}
	if c == '}' {
		return false, nil
	}
	r.Retract()
	return true, nil
}

// NextField consumes a ',' and reports that another entry follows, or
// consumes the closing '}'.
func (r *Reader) NextField() (bool, error) {
	c, err := r.NextToken()
	if err != nil {
		return false, err
	}
	switch c {
	case ',':
		return true, nil
	case '}':
		return false, nil
	}
	return false, fmt.Errorf("expected ',' or '}', got '%c'", c)
}

// FirstElement reports whether an array whose '[' was just consumed has
// at least one element.
func (r *Reader) FirstElement() (bool, error) {
	c, err := r.NextToken()
	if err != nil {
		return false, err
	}
	if c == ']' {
		return false, nil
	}
	r.Retract()
	return true, nil
}

// NextElement consumes a ',' and reports that another element follows,
// or consumes the closing ']'.
func (r *Reader) NextElement() (bool, error) {
	c, err := r.NextToken()
	if err != nil {
		return false, err
	}
	switch c {
	case ',':
		return true, nil
	case ']':
		return false, nil
	}
	return false, fmt.Errorf("expected ',' or ']', got '%c'", c)
}

// MatchName reads the next JSON string token and matches it against m,
// returning the matched index or -1. It serves both object-key and
// discriminator-tag recognition.
func (r *Reader) MatchName(m *Matcher) (int, error) {
	s, err := r.ReadString()
	if err != nil {
		return -1, err
	}
	return m.Index(s), nil
}

// SkipValue consumes one complete JSON value without decoding it.
func (r *Reader) SkipValue() error {
	c, err := r.NextToken()
	if err != nil {
		return err
	}
	switch c {
	case '{':
		more, err := r.FirstField()
		if err != nil {
			return err
		}
		for more {
			if _, err := r.ReadString(); err != nil {
				return err
			}
			if err := r.Expect(':'); err != nil {
				return err
			}
			if err := r.SkipValue(); err != nil {
				return err
			}
			if more, err = r.NextField(); err != nil {
				return err
			}
		}
		return nil
	case '[':
		more, err := r.FirstElement()
		if err != nil {
			return err
		}
		for more {
			if err := r.SkipValue(); err != nil {
				return err
			}
			if more, err = r.NextElement(); err != nil {
				return err
			}
		}
		return nil
	case '"':
		_, err := r.rawStringBody()
		return err
	case 't':
		return r.word("rue")
	case 'f':
		return r.word("alse")
	case 'n':
		return r.word("ull")
	default:
		r.Retract()
		_, err := r.ReadNumber()
		return err
	}
}

// Offset returns the absolute position in the stream.
func (r *Reader) Offset() int {
	return r.off + r.pos
}

// Record marks the current position and disables buffer compaction so the
// bytes from here on can be replayed. The mark is scoped to the bytes of
// whatever value the caller is about to consume; callers must Release it
// when done, including on error paths.
func (r *Reader) Record() int {
	r.marks++
	return r.off + r.pos
}

// Rewind repositions the reader at a mark obtained from Record.
func (r *Reader) Rewind(mark int) {
	r.pos = mark - r.off
}

// Release ends the recording started by the matching Record call.
func (r *Reader) Release(int) {
	if r.marks == 0 {
		panic("token: Release without Record")
	}
	r.marks--
}
