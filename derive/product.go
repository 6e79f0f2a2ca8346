// Package derive builds encoders and decoders for product (record) and
// sum (tagged-union) types from per-field and per-variant metadata, so
// no per-type serialization code is written by hand. Sum types support
// both the wrapper encoding (a single-key object named after the
// variant) and the discriminator encoding, which flattens the tag field
// into the variant's own object body.
package derive

import (
	"github.com/signadot/go-jval/decode"
	"github.com/signadot/go-jval/encode"
	"github.com/signadot/go-jval/token"
)

// EncField binds one object field to a getter and an encoder.
type EncField[T any] struct {
	name      string
	isNothing func(T) bool
	write     func(T, *int, token.Writer)
}

// NewEncField binds field name to the value extracted by get, encoded
// with enc. Fields whose encoder reports IsNothing for a given instance
// are omitted from the object entirely.
func NewEncField[T, A any](name string, get func(T) A, enc encode.Encoder[A]) EncField[T] {
	return EncField[T]{
		name: name,
		isNothing: func(t T) bool {
			return enc.IsNothing(get(t))
		},
		write: func(t T, indent *int, w token.Writer) {
			enc.UnsafeEncode(get(t), indent, w)
		},
	}
}

// ObjectEncoder encodes T as an object with the given fields in
// declaration order. A zero-field product encodes as the literal {}.
func ObjectEncoder[T any](fields ...EncField[T]) encode.Encoder[T] {
	return encode.New(func(t T, indent *int, w token.Writer) {
		w.WriteByte('{')
		inner := encode.Inc(indent)
		first := true
		for _, f := range fields {
			if f.isNothing(t) {
				continue
			}
			if !first {
				w.WriteByte(',')
			}
			first = false
			encode.Pad(inner, w)
			token.WriteQuoted(w, f.name)
			encode.Colon(inner, w)
			f.write(t, inner, w)
		}
		if !first {
			encode.Pad(indent, w)
		}
		w.WriteByte('}')
	})
}

// DecField binds one object field to a setter and a decoder.
type DecField[T any] struct {
	name    string
	set     func(*T, []decode.Step, *token.Reader) error
	missing func(*T, []decode.Step) error
}

// NewDecField binds field name to set, decoding with dec. When the
// field never appears in the input, the decoder's missing-field
// fallback supplies the value or fails.
func NewDecField[T, A any](name string, set func(*T, A), dec decode.Decoder[A]) DecField[T] {
	return DecField[T]{
		name: name,
		set: func(t *T, trace []decode.Step, in *token.Reader) error {
			a, err := dec.UnsafeDecode(trace, in)
			if err != nil {
				return err
			}
			set(t, a)
			return nil
		},
		missing: func(t *T, trace []decode.Step) error {
			a, err := dec.UnsafeDecodeMissing(trace)
			if err != nil {
				return err
			}
			set(t, a)
			return nil
		},
	}
}

type decodeConfig struct {
	noExtraFields bool
}

type Option func(*decodeConfig)

// NoExtraFields makes unknown object fields a decode error instead of
// skipping them.
func NoExtraFields() Option {
	return func(c *decodeConfig) { c.noExtraFields = true }
}

// ObjectDecoder decodes an object into T. Keys are recognized via the
// shared matching facility; a key matched twice is a "duplicate" error,
// unknown keys are skipped (or rejected under NoExtraFields), and
// fields never seen fall back to their decoder's missing behavior. All
// field errors carry the field's place in the trace.
func ObjectDecoder[T any](fields []DecField[T], opts ...Option) decode.Decoder[T] {
	cfg := &decodeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	matcher := token.NewMatcher(names...)

	return decode.New(func(trace []decode.Step, in *token.Reader) (T, error) {
		var t T
		if err := in.Expect('{'); err != nil {
			return t, decode.Fail(trace, err)
		}
		seen := make([]bool, len(fields))
		more, err := in.FirstField()
		if err != nil {
			return t, decode.Fail(trace, err)
		}
		for more {
			idx, name, err := matchField(in, matcher)
			if err != nil {
				return t, decode.Fail(trace, err)
			}
			fieldTrace := append(trace, decode.FieldStep(name))
			if idx < 0 {
				if cfg.noExtraFields {
					return t, decode.NewError(fieldTrace, "invalid extra field")
				}
				if err := in.Expect(':'); err != nil {
					return t, decode.Fail(fieldTrace, err)
				}
				if err := in.SkipValue(); err != nil {
					return t, decode.Fail(fieldTrace, err)
				}
			} else {
				if seen[idx] {
					return t, decode.NewError(fieldTrace, "duplicate")
				}
				seen[idx] = true
				if err := in.Expect(':'); err != nil {
					return t, decode.Fail(fieldTrace, err)
				}
				if err := fields[idx].set(&t, fieldTrace, in); err != nil {
					return t, err
				}
			}
			if more, err = in.NextField(); err != nil {
				return t, decode.Fail(trace, err)
			}
		}
		for i, f := range fields {
			if seen[i] {
				continue
			}
			if err := f.missing(&t, append(trace, decode.FieldStep(f.name))); err != nil {
				return t, err
			}
		}
		return t, nil
	})
}

// matchField reads the next object key and returns its index in the
// matcher, or -1 together with the unmatched name.
func matchField(in *token.Reader, m *token.Matcher) (int, string, error) {
	name, err := in.ReadString()
	if err != nil {
		return -1, "", err
	}
	return m.Index(name), name, nil
}
