package ast

import (
	"maps"
	"slices"
	"strconv"
)

// Json is a node in an immutable JSON value tree. Which payload fields
// are meaningful depends on Type:
//
//   - NullType: none
//   - BoolType: Bool
//   - NumberType: exactly one of Int64, Float64 or Number (raw decimal
//     text for values neither fits)
//   - StringType: Str
//   - ArrayType: Values, order-significant
//   - ObjectType: Fields[i] is the key for Values[i]; insertion order is
//     preserved for encoding and iteration but does not participate in
//     equality or hashing, and keys need not be unique
//
// Nodes are never mutated after construction. Transforms and deletes
// build new trees that share unchanged subtrees.
type Json struct {
	Type Type

	Bool    bool
	Str     string
	Int64   *int64
	Float64 *float64
	Number  string

	Fields []string
	Values []*Json
}

// Pair is one object entry.
type Pair struct {
	Key string
	Val *Json
}

// F builds an object entry.
func F(key string, val *Json) Pair {
	return Pair{Key: key, Val: val}
}

func Null() *Json {
	return &Json{Type: NullType}
}

func FromBool(v bool) *Json {
	return &Json{Type: BoolType, Bool: v}
}

func FromString(v string) *Json {
	return &Json{Type: StringType, Str: v}
}

func FromInt(v int64) *Json {
	return &Json{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Json {
	return &Json{Type: NumberType, Float64: &f}
}

// FromNumber holds a decimal literal that fits neither int64 nor
// float64 exactly, as raw text.
func FromNumber(raw string) *Json {
	return &Json{Type: NumberType, Number: raw}
}

func Obj(pairs ...Pair) *Json {
	res := &Json{
		Type:   ObjectType,
		Fields: make([]string, len(pairs)),
		Values: make([]*Json, len(pairs)),
	}
	for i, p := range pairs {
		res.Fields[i] = p.Key
		res.Values[i] = p.Val
	}
	return res
}

func Arr(values ...*Json) *Json {
	return &Json{Type: ArrayType, Values: values}
}

// FromMap builds an object with keys in sorted order.
func FromMap(m map[string]*Json) *Json {
	keys := slices.Sorted(maps.Keys(m))
	pairs := make([]Pair, len(keys))
	for i, k := range keys {
		pairs[i] = Pair{Key: k, Val: m[k]}
	}
	return Obj(pairs...)
}

// ToMap returns the entries of an object as a map, the last value
// winning for duplicate keys, or nil for non-objects.
func ToMap(j *Json) map[string]*Json {
	if j.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Json, len(j.Fields))
	for i, f := range j.Fields {
		res[f] = j.Values[i]
	}
	return res
}

// Get returns the value of the first entry named field, or nil.
func Get(j *Json, field string) *Json {
	if j.Type != ObjectType {
		return nil
	}
	for i, f := range j.Fields {
		if f == field {
			return j.Values[i]
		}
	}
	return nil
}

// NumberText returns the canonical decimal text of a number node.
func (j *Json) NumberText() string {
	switch {
	case j.Int64 != nil:
		return strconv.FormatInt(*j.Int64, 10)
	case j.Float64 != nil:
		return strconv.FormatFloat(*j.Float64, 'g', -1, 64)
	default:
		return j.Number
	}
}

// Equal reports structural equality: object entries compare as an
// unordered multiset, array elements in order, and values of different
// variants are never equal.
func Equal(a, b *Json) bool {
	return Compare(a, b) == 0
}
