package ast

import (
	"fmt"
	"hash/maphash"
	"strconv"
	"strings"

	"github.com/signadot/go-jval/token"
)

type stepKind int

const (
	stepField stepKind = iota
	stepElement
	stepFilter
)

type step struct {
	kind   stepKind
	field  string
	index  int
	filter Type
}

// Cursor is an immutable, composable description of a location or filter
// inside a Json tree. Cursors are pure data: equal cursors are
// interchangeable, and a cursor renders to (and parses from) a path
// string such as `entities.hashtags[1]` with type filters written as
// `{Object}` segments.
type Cursor struct {
	steps []step
}

// Identity refers to the whole value.
func Identity() Cursor {
	return Cursor{}
}

// Field steps to the named entry of an object.
func Field(name string) Cursor {
	return Cursor{steps: []step{{kind: stepField, field: name}}}
}

// Element steps to the array element at index.
func Element(index int) Cursor {
	return Cursor{steps: []step{{kind: stepElement, index: index}}}
}

// Filter asserts that the current value has the given variant. Lookups
// through a mismatched filter fail; deletes through one are a no-op.
func Filter(t Type) Cursor {
	return Cursor{steps: []step{{kind: stepFilter, filter: t}}}
}

func IsNull() Cursor   { return Filter(NullType) }
func IsBool() Cursor   { return Filter(BoolType) }
func IsNumber() Cursor { return Filter(NumberType) }
func IsString() Cursor { return Filter(StringType) }
func IsArray() Cursor  { return Filter(ArrayType) }
func IsObject() Cursor { return Filter(ObjectType) }

// Then composes c with next, c applying first. It is the `>>>` of the
// cursor algebra.
func (c Cursor) Then(next Cursor) Cursor {
	if len(next.steps) == 0 {
		return c
	}
	if len(c.steps) == 0 {
		return next
	}
	steps := make([]step, 0, len(c.steps)+len(next.steps))
	steps = append(steps, c.steps...)
	steps = append(steps, next.steps...)
	return Cursor{steps: steps}
}

// Field appends a field step.
func (c Cursor) Field(name string) Cursor {
	return c.Then(Field(name))
}

// Element appends an element step.
func (c Cursor) Element(index int) Cursor {
	return c.Then(Element(index))
}

// Filter appends a type filter step.
func (c Cursor) Filter(t Type) Cursor {
	return c.Then(Filter(t))
}

// Equal reports whether c and d denote the same path.
func (c Cursor) Equal(d Cursor) bool {
	if len(c.steps) != len(d.steps) {
		return false
	}
	for i, s := range c.steps {
		if s != d.steps[i] {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with Equal.
func (c Cursor) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	for _, s := range c.steps {
		h.WriteByte(byte(s.kind))
		switch s.kind {
		case stepField:
			h.WriteString(s.field)
			h.WriteByte(0)
		case stepElement:
			h.WriteString(strconv.Itoa(s.index))
		case stepFilter:
			h.WriteByte(byte(s.filter))
		}
	}
	return h.Sum64()
}

func (c Cursor) String() string {
	var b strings.Builder
	for i, s := range c.steps {
		switch s.kind {
		case stepField:
			if i > 0 {
				b.WriteByte('.')
			}
			if cursorQuoteField(s.field) {
				b.WriteString(token.Quote(s.field))
			} else {
				b.WriteString(s.field)
			}
		case stepElement:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
		case stepFilter:
			b.WriteByte('{')
			b.WriteString(s.filter.String())
			b.WriteByte('}')
		}
	}
	return b.String()
}

// cursorQuoteField reports whether a field segment needs quoting in the
// path syntax.
func cursorQuoteField(f string) bool {
	if f == "" {
		return true
	}
	return strings.ContainsAny(f, ".[]{}\"\\ \t\n\r")
}

// ParseCursor parses the path syntax produced by String.
func ParseCursor(s string) (Cursor, error) {
	c := Identity()
	pos := 0
	for pos < len(s) {
		switch s[pos] {
		case '.':
			if pos == 0 {
				return Cursor{}, fmt.Errorf("cursor %q: leading '.'", s)
			}
			pos++
			if pos >= len(s) {
				return Cursor{}, fmt.Errorf("cursor %q: trailing '.'", s)
			}
		case '[':
			end := strings.IndexByte(s[pos:], ']')
			if end < 0 {
				return Cursor{}, fmt.Errorf("cursor %q: unclosed '['", s)
			}
			idx, err := strconv.Atoi(s[pos+1 : pos+end])
			if err != nil {
				return Cursor{}, fmt.Errorf("cursor %q: bad index: %w", s, err)
			}
			c = c.Element(idx)
			pos += end + 1
		case '{':
			end := strings.IndexByte(s[pos:], '}')
			if end < 0 {
				return Cursor{}, fmt.Errorf("cursor %q: unclosed '{'", s)
			}
			var t Type
			if err := t.UnmarshalText([]byte(s[pos+1 : pos+end])); err != nil {
				return Cursor{}, fmt.Errorf("cursor %q: %w", s, err)
			}
			c = c.Filter(t)
			pos += end + 1
		case '"':
			field, n, err := parseQuotedField(s[pos:])
			if err != nil {
				return Cursor{}, fmt.Errorf("cursor %q: %w", s, err)
			}
			c = c.Field(field)
			pos += n
		default:
			end := pos
			for end < len(s) && !strings.ContainsRune(".[{", rune(s[end])) {
				end++
			}
			c = c.Field(s[pos:end])
			pos = end
		}
	}
	return c, nil
}

func parseQuotedField(s string) (string, int, error) {
	r := token.NewReaderBytes([]byte(s))
	field, err := r.ReadString()
	if err != nil {
		return "", 0, err
	}
	return field, r.Offset(), nil
}
