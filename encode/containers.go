package encode

import (
	"sort"

	"github.com/signadot/go-jval/token"
)

// Slice encodes []A as a JSON array preserving order.
func Slice[A any](elem Encoder[A]) Encoder[[]A] {
	return New(func(vs []A, indent *int, w token.Writer) {
		if len(vs) == 0 {
			w.WriteString("[]")
			return
		}
		w.WriteByte('[')
		inner := Inc(indent)
		for i, v := range vs {
			if i > 0 {
				w.WriteByte(',')
			}
			Pad(inner, w)
			elem.UnsafeEncode(v, inner, w)
		}
		Pad(indent, w)
		w.WriteByte(']')
	})
}

// FieldEncoder renders a map key as an object field name. Keys must be
// representable as strings.
type FieldEncoder[K any] func(K) string

// StringField is the field encoder for string keys.
func StringField(k string) string { return k }

// MapK encodes an associative container as an object, keys via ke and
// values via ve. Entries whose value encoder reports IsNothing are
// skipped, entries are emitted in sorted field order, and an empty (or
// fully skipped) container is the literal {} with no internal
// whitespace even in pretty mode.
func MapK[K comparable, V any](ke FieldEncoder[K], ve Encoder[V]) Encoder[map[K]V] {
	return New(func(m map[K]V, indent *int, w token.Writer) {
		type entry struct {
			field string
			key   K
		}
		entries := make([]entry, 0, len(m))
		for k, v := range m {
			if ve.IsNothing(v) {
				continue
			}
			entries = append(entries, entry{field: ke(k), key: k})
		}
		if len(entries) == 0 {
			w.WriteString("{}")
			return
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].field < entries[j].field
		})
		w.WriteByte('{')
		inner := Inc(indent)
		for i, e := range entries {
			if i > 0 {
				w.WriteByte(',')
			}
			Pad(inner, w)
			token.WriteQuoted(w, e.field)
			Colon(inner, w)
			ve.UnsafeEncode(m[e.key], inner, w)
		}
		Pad(indent, w)
		w.WriteByte('}')
	})
}

// Map encodes map[string]V.
func Map[V any](ve Encoder[V]) Encoder[map[string]V] {
	return MapK[string](StringField, ve)
}

// Ptr treats a nil pointer as nothing, so optional fields vanish from
// objects instead of serializing as null. Outside an object field
// position, nil encodes as null.
func Ptr[A any](e Encoder[A]) Encoder[*A] {
	return funcEncoder[*A]{
		enc: func(p *A, indent *int, w token.Writer) {
			if p == nil {
				w.WriteString("null")
				return
			}
			e.UnsafeEncode(*p, indent, w)
		},
		nothing: func(p *A) bool {
			return p == nil
		},
	}
}
