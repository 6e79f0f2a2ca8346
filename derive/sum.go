package derive

import (
	"github.com/signadot/go-jval/decode"
	"github.com/signadot/go-jval/encode"
	"github.com/signadot/go-jval/token"
)

// Variant binds one case of a sum type T to its tag and the
// encoder/decoder of its payload.
type Variant[T any] struct {
	tag     string
	matches func(T) bool
	write   func(T, *int, token.Writer)
	dec     decode.Decoder[T]
}

// NewVariant binds tag to the case carried by V. unwrap extracts the
// payload and reports whether t is this case; wrap re-injects a decoded
// payload into T.
func NewVariant[T, V any](
	tag string,
	unwrap func(T) (V, bool),
	wrap func(V) T,
	enc encode.Encoder[V],
	dec decode.Decoder[V],
) Variant[T] {
	return Variant[T]{
		tag: tag,
		matches: func(t T) bool {
			_, ok := unwrap(t)
			return ok
		},
		write: func(t T, indent *int, w token.Writer) {
			v, _ := unwrap(t)
			enc.UnsafeEncode(v, indent, w)
		},
		dec: decode.Map(dec, wrap),
	}
}

func (v Variant[T]) Tag() string {
	return v.tag
}

// SumEncoder encodes T as a single-key object whose key is the matching
// variant's tag and whose value is that variant's own encoding.
// Variants are tried in order; a value matching none is a programming
// error in the variant metadata and panics.
func SumEncoder[T any](variants ...Variant[T]) encode.Encoder[T] {
	return encode.New(func(t T, indent *int, w token.Writer) {
		v := selectVariant(variants, t)
		w.WriteByte('{')
		inner := encode.Inc(indent)
		encode.Pad(inner, w)
		token.WriteQuoted(w, v.tag)
		encode.Colon(inner, w)
		v.write(t, inner, w)
		encode.Pad(indent, w)
		w.WriteByte('}')
	})
}

// SumDecoder decodes the single-key object form. An empty object is
// "expected non-empty object"; a key that is not a known tag, or a
// second key after the tag, is "invalid disambiguator".
func SumDecoder[T any](variants ...Variant[T]) decode.Decoder[T] {
	matcher := tagMatcher(variants)
	return decode.New(func(trace []decode.Step, in *token.Reader) (T, error) {
		var zero T
		if err := in.Expect('{'); err != nil {
			return zero, decode.Fail(trace, err)
		}
		more, err := in.FirstField()
		if err != nil {
			return zero, decode.Fail(trace, err)
		}
		if !more {
			return zero, decode.NewError(trace, "expected non-empty object")
		}
		idx, err := in.MatchName(matcher)
		if err != nil {
			return zero, decode.Fail(trace, err)
		}
		if idx < 0 {
			return zero, decode.NewError(trace, "invalid disambiguator")
		}
		v := variants[idx]
		if err := in.Expect(':'); err != nil {
			return zero, decode.Fail(trace, err)
		}
		t, err := v.dec.UnsafeDecode(append(trace, decode.TagStep(v.tag)), in)
		if err != nil {
			return zero, err
		}
		if more, err = in.NextField(); err != nil {
			return zero, decode.Fail(trace, err)
		}
		if more {
			return zero, decode.NewError(trace, "invalid disambiguator")
		}
		return t, nil
	})
}

// DiscriminatorEncoder encodes T as one object holding the disc field
// followed by the matching variant's own fields, flattened. The variant
// encoder runs at the enclosing indent through a spliceWriter, so its
// fields pad one level deeper and its closing brace closes the
// enclosing object. Variant payloads must encode as objects.
func DiscriminatorEncoder[T any](disc string, variants ...Variant[T]) encode.Encoder[T] {
	return encode.New(func(t T, indent *int, w token.Writer) {
		v := selectVariant(variants, t)
		w.WriteByte('{')
		inner := encode.Inc(indent)
		encode.Pad(inner, w)
		token.WriteQuoted(w, disc)
		encode.Colon(inner, w)
		token.WriteQuoted(w, v.tag)
		v.write(t, indent, &spliceWriter{w: w})
	})
}

// DiscriminatorDecoder decodes the flattened form. Field order is not
// guaranteed, so the object is recorded and scanned once to locate the
// disc field and match its tag, then rewound and decoded in full with
// the selected variant decoder, which skips the disc field as an
// unknown key. A disc field that never appears is "missing hint". The
// recording covers only the current object and is released on all
// paths.
func DiscriminatorDecoder[T any](disc string, variants ...Variant[T]) decode.Decoder[T] {
	discMatcher := token.NewMatcher(disc)
	tags := tagMatcher(variants)
	return decode.New(func(trace []decode.Step, in *token.Reader) (T, error) {
		var zero T
		mark := in.Record()
		defer in.Release(mark)
		if err := in.Expect('{'); err != nil {
			return zero, decode.Fail(trace, err)
		}
		more, err := in.FirstField()
		if err != nil {
			return zero, decode.Fail(trace, err)
		}
		idx := -1
		for more {
			hit, err := in.MatchName(discMatcher)
			if err != nil {
				return zero, decode.Fail(trace, err)
			}
			if err := in.Expect(':'); err != nil {
				return zero, decode.Fail(trace, err)
			}
			if hit == 0 {
				if idx, err = in.MatchName(tags); err != nil {
					return zero, decode.Fail(trace, err)
				}
				if idx < 0 {
					return zero, decode.NewError(trace, "invalid disambiguator")
				}
				break
			}
			if err := in.SkipValue(); err != nil {
				return zero, decode.Fail(trace, err)
			}
			if more, err = in.NextField(); err != nil {
				return zero, decode.Fail(trace, err)
			}
		}
		if idx < 0 {
			return zero, decode.NewError(trace, "missing hint")
		}
		in.Rewind(mark)
		v := variants[idx]
		return v.dec.UnsafeDecode(append(trace, decode.TagStep(v.tag)), in)
	})
}

func selectVariant[T any](variants []Variant[T], t T) Variant[T] {
	for _, v := range variants {
		if v.matches(t) {
			return v
		}
	}
	panic("derive: value matches no variant")
}

func tagMatcher[T any](variants []Variant[T]) *token.Matcher {
	tags := make([]string, len(variants))
	for i, v := range variants {
		tags[i] = v.tag
	}
	return token.NewMatcher(tags...)
}
