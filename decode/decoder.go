// Package decode provides the streaming text-to-value decoder protocol.
// Every decode failure is a single *Error carrying an ordered trace of
// location steps; malformed input never yields a partial value.
package decode

import (
	"io"

	"github.com/signadot/go-jval/debug"
	"github.com/signadot/go-jval/token"
)

// Decoder turns JSON text into values of type A. UnsafeDecode consumes
// one value off the reader; trace is the path of location steps from the
// root, grown by container decoders as they descend.
//
// UnsafeDecodeMissing is the fallback used when an object field bound to
// this decoder never appears in the input. Most decoders fail with
// "missing"; optional decoders produce their absent value.
type Decoder[A any] interface {
	UnsafeDecode(trace []Step, in *token.Reader) (A, error)
	UnsafeDecodeMissing(trace []Step) (A, error)
}

// Decode decodes one value from input, rejecting trailing
// non-whitespace.
func Decode[A any](d Decoder[A], input []byte) (A, error) {
	var zero A
	if debug.Decode() {
		debug.Logf("decode %s\n", string(input))
	}
	in := token.NewReaderBytes(input)
	a, err := d.UnsafeDecode(nil, in)
	if err != nil {
		return zero, err
	}
	if c, err := in.NextToken(); err == nil {
		return zero, newError(nil, "unexpected trailing character '"+string(c)+"'")
	}
	if debug.Decode() {
		debug.LogAny(a)
	}
	return a, nil
}

// DecodeReader decodes one value from r, leaving the reader positioned
// after it.
func DecodeReader[A any](d Decoder[A], r io.Reader) (A, error) {
	return d.UnsafeDecode(nil, token.NewReader(r))
}

// New builds a decoder from a streaming function; a field bound to it
// that never appears is an error.
func New[A any](f func(trace []Step, in *token.Reader) (A, error)) Decoder[A] {
	return funcDecoder[A]{dec: f}
}

// NewWithMissing builds a decoder with an explicit missing-field
// fallback.
func NewWithMissing[A any](
	f func(trace []Step, in *token.Reader) (A, error),
	missing func(trace []Step) (A, error),
) Decoder[A] {
	return funcDecoder[A]{dec: f, missing: missing}
}

type funcDecoder[A any] struct {
	dec     func([]Step, *token.Reader) (A, error)
	missing func([]Step) (A, error)
}

func (d funcDecoder[A]) UnsafeDecode(trace []Step, in *token.Reader) (A, error) {
	return d.dec(trace, in)
}

func (d funcDecoder[A]) UnsafeDecodeMissing(trace []Step) (A, error) {
	if d.missing != nil {
		return d.missing(trace)
	}
	var zero A
	return zero, newError(trace, "missing")
}

// Map derives a decoder for B by applying f to each decoded A.
func Map[A, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return funcDecoder[B]{
		dec: func(trace []Step, in *token.Reader) (B, error) {
			var zero B
			a, err := d.UnsafeDecode(trace, in)
			if err != nil {
				return zero, err
			}
			return f(a), nil
		},
		missing: func(trace []Step) (B, error) {
			var zero B
			a, err := d.UnsafeDecodeMissing(trace)
			if err != nil {
				return zero, err
			}
			return f(a), nil
		},
	}
}

// MapOrFail is Map for partial conversions; the failure message lands in
// the error trace at the current location.
func MapOrFail[A, B any](d Decoder[A], f func(A) (B, error)) Decoder[B] {
	return New(func(trace []Step, in *token.Reader) (B, error) {
		var zero B
		a, err := d.UnsafeDecode(trace, in)
		if err != nil {
			return zero, err
		}
		b, err := f(a)
		if err != nil {
			return zero, newError(trace, err.Error())
		}
		return b, nil
	})
}

// XMap is Map carrying the reverse mapping as well; the decode path
// consumes only the forward half, mirroring encode.XMap which consumes
// only the reverse. The asymmetry is deliberate.
func XMap[A, B any](d Decoder[A], f func(A) B, _ func(B) A) Decoder[B] {
	return Map(d, f)
}

// fail wraps a lexer error into a located decode error.
func fail(trace []Step, err error) error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return newError(trace, err.Error())
}
