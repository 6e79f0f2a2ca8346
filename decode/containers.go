package decode

import (
	"github.com/signadot/go-jval/ast"
	"github.com/signadot/go-jval/token"
)

// Slice decodes a JSON array into []A, elements in order. Element
// errors carry their index in the trace.
func Slice[A any](elem Decoder[A]) Decoder[[]A] {
	return New(func(trace []Step, in *token.Reader) ([]A, error) {
		if err := in.Expect('['); err != nil {
			return nil, fail(trace, err)
		}
		more, err := in.FirstElement()
		if err != nil {
			return nil, fail(trace, err)
		}
		var res []A
		for more {
			a, err := elem.UnsafeDecode(append(trace, IndexStep(len(res))), in)
			if err != nil {
				return nil, err
			}
			res = append(res, a)
			if more, err = in.NextElement(); err != nil {
				return nil, fail(trace, err)
			}
		}
		return res, nil
	})
}

// FieldDecoder parses a map key from an object field name.
type FieldDecoder[K any] func(string) (K, error)

// StringField is the field decoder for string keys.
func StringField(s string) (string, error) { return s, nil }

// MapK decodes a JSON object into a map, keys via kd and values via vd.
// A key appearing twice is a "duplicate" error.
func MapK[K comparable, V any](kd FieldDecoder[K], vd Decoder[V]) Decoder[map[K]V] {
	return New(func(trace []Step, in *token.Reader) (map[K]V, error) {
		if err := in.Expect('{'); err != nil {
			return nil, fail(trace, err)
		}
		more, err := in.FirstField()
		if err != nil {
			return nil, fail(trace, err)
		}
		res := map[K]V{}
		for more {
			name, err := in.ReadString()
			if err != nil {
				return nil, fail(trace, err)
			}
			fieldTrace := append(trace, FieldStep(name))
			k, err := kd(name)
			if err != nil {
				return nil, newError(fieldTrace, err.Error())
			}
			if _, ok := res[k]; ok {
				return nil, newError(fieldTrace, "duplicate")
			}
			if err := in.Expect(':'); err != nil {
				return nil, fail(fieldTrace, err)
			}
			v, err := vd.UnsafeDecode(fieldTrace, in)
			if err != nil {
				return nil, err
			}
			res[k] = v
			if more, err = in.NextField(); err != nil {
				return nil, fail(trace, err)
			}
		}
		return res, nil
	})
}

// StringMap decodes into map[string]V. The name leaves Map for the
// combinator form.
func StringMap[V any](vd Decoder[V]) Decoder[map[string]V] {
	return MapK[string](StringField, vd)
}

// Ptr decodes null to nil and anything else through the element
// decoder. A field bound to it that never appears decodes to nil, which
// is how optional fields come back absent rather than failing.
func Ptr[A any](elem Decoder[A]) Decoder[*A] {
	return NewWithMissing(
		func(trace []Step, in *token.Reader) (*A, error) {
			c, err := in.Peek()
			if err != nil {
				return nil, fail(trace, err)
			}
			if c == 'n' {
				if err := in.ReadNull(); err != nil {
					return nil, fail(trace, err)
				}
				return nil, nil
			}
			a, err := elem.UnsafeDecode(trace, in)
			if err != nil {
				return nil, err
			}
			return &a, nil
		},
		func([]Step) (*A, error) {
			return nil, nil
		},
	)
}

// Json decodes one value into the AST.
func Json() Decoder[*ast.Json] {
	return New(func(trace []Step, in *token.Reader) (*ast.Json, error) {
		j, err := ast.FromReader(in)
		if err != nil {
			return nil, fail(trace, err)
		}
		return j, nil
	})
}
