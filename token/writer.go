package token

import (
	"io"
	"strings"
)

// Writer is the sink contract consumed by encoders. Implementations carry
// any underlying I/O failure themselves so encode paths never fail
// mid-value.
type Writer interface {
	WriteString(v string)
	WriteByte(c byte)
}

// Sink adapts an io.Writer to the Writer contract with a sticky error.
type Sink struct {
	w   io.Writer
	err error
}

func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

func (s *Sink) WriteString(v string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, v)
}

func (s *Sink) WriteByte(c byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write([]byte{c})
}

// Err returns the first error encountered writing to the underlying
// io.Writer, if any.
func (s *Sink) Err() error {
	return s.err
}

// StringWriter is a Writer accumulating into memory. The zero value is
// ready to use.
type StringWriter struct {
	b strings.Builder
}

func (s *StringWriter) WriteString(v string) {
	s.b.WriteString(v)
}

func (s *StringWriter) WriteByte(c byte) {
	s.b.WriteByte(c)
}

func (s *StringWriter) String() string {
	return s.b.String()
}
