// Package encode provides the streaming value-to-text encoder protocol:
// scalar encoders, container combinators, contravariant composition and
// the indentation and field-skipping machinery shared by derived
// object encoders.
package encode

import (
	"io"
	"strings"

	"github.com/signadot/go-jval/token"
)

// Encoder turns values of type A into JSON text. UnsafeEncode streams
// directly into the sink with no intermediate strings for nested calls;
// indent is nil for compact output or the current pretty-printing level.
//
// IsNothing lets an encoder declare a value absent: an object field
// whose encoder reports IsNothing is omitted from the enclosing object
// entirely, key and value both.
type Encoder[A any] interface {
	UnsafeEncode(a A, indent *int, w token.Writer)
	IsNothing(a A) bool
}

// Encode renders a compactly.
func Encode[A any](e Encoder[A], a A) string {
	var w token.StringWriter
	e.UnsafeEncode(a, nil, &w)
	return w.String()
}

// EncodePretty renders a with two-space indentation.
func EncodePretty[A any](e Encoder[A], a A) string {
	var w token.StringWriter
	zero := 0
	e.UnsafeEncode(a, &zero, &w)
	return w.String()
}

// EncodeTo streams a into w, compact when indent is nil, and returns
// the first write error.
func EncodeTo[A any](e Encoder[A], a A, indent *int, w io.Writer) error {
	sink := token.NewSink(w)
	e.UnsafeEncode(a, indent, sink)
	return sink.Err()
}

// New builds an encoder from a streaming function. IsNothing is false.
func New[A any](f func(a A, indent *int, w token.Writer)) Encoder[A] {
	return funcEncoder[A]{enc: f}
}

type funcEncoder[A any] struct {
	enc     func(A, *int, token.Writer)
	nothing func(A) bool
}

func (e funcEncoder[A]) UnsafeEncode(a A, indent *int, w token.Writer) {
	e.enc(a, indent, w)
}

func (e funcEncoder[A]) IsNothing(a A) bool {
	if e.nothing == nil {
		return false
	}
	return e.nothing(a)
}

// ContraMap derives an encoder for B from an encoder for A and a mapping
// B -> A. This is the sole mechanism for adapting encoders without
// rewriting serialization logic.
func ContraMap[B, A any](e Encoder[A], f func(B) A) Encoder[B] {
	return funcEncoder[B]{
		enc: func(b B, indent *int, w token.Writer) {
			e.UnsafeEncode(f(b), indent, w)
		},
		nothing: func(b B) bool {
			return e.IsNothing(f(b))
		},
	}
}

// XMap is ContraMap carrying the reverse mapping as well. The reverse
// half is not consumed on the encode path; decode.XMap is its consumer.
// The asymmetry is deliberate.
func XMap[A, B any](e Encoder[A], f func(B) A, _ func(A) B) Encoder[B] {
	return ContraMap[B](e, f)
}

// Pad writes the pretty-printing line break: newline plus 2*indent
// spaces. Compact mode writes nothing.
func Pad(indent *int, w token.Writer) {
	if indent == nil {
		return
	}
	w.WriteByte('\n')
	w.WriteString(strings.Repeat("  ", *indent))
}

// Inc returns the indent one level deeper, sharing nil-ness.
func Inc(indent *int) *int {
	if indent == nil {
		return nil
	}
	next := *indent + 1
	return &next
}

// Colon writes the key-value separator, ` : ` when pretty.
func Colon(indent *int, w token.Writer) {
	if indent == nil {
		w.WriteByte(':')
		return
	}
	w.WriteString(" : ")
}

// Comma writes the entry separator followed by the pretty line break.
func Comma(indent *int, w token.Writer) {
	w.WriteByte(',')
	Pad(indent, w)
}
