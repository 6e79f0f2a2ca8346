package ast

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// ToAny converts a tree to plain Go values: map[string]any, []any,
// string, bool, int64, float64 and nil. For duplicate object keys the
// last entry wins. Raw numbers convert to their decimal text.
func ToAny(j *Json) any {
	switch j.Type {
	case NullType:
		return nil
	case BoolType:
		return j.Bool
	case StringType:
		return j.Str
	case NumberType:
		switch {
		case j.Int64 != nil:
			return *j.Int64
		case j.Float64 != nil:
			return *j.Float64
		default:
			return j.Number
		}
	case ArrayType:
		res := make([]any, len(j.Values))
		for i, v := range j.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(j.Fields))
		for i, f := range j.Fields {
			res[f] = ToAny(j.Values[i])
		}
		return res
	}
	panic("type")
}

// FromAny converts plain Go values to a tree. Map keys are emitted in
// sorted order so the conversion is deterministic.
func FromAny(v any) (*Json, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return FromNumber(strconv.FormatUint(x, 10)), nil
		}
		return FromInt(int64(x)), nil
	case float64:
		return FromFloat(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case []any:
		vals := make([]*Json, len(x))
		for i, e := range x {
			var err error
			if vals[i], err = FromAny(e); err != nil {
				return nil, err
			}
		}
		return Arr(vals...), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]Pair, len(keys))
		for i, k := range keys {
			val, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			pairs[i] = Pair{Key: k, Val: val}
		}
		return Obj(pairs...), nil
	default:
		return nil, fmt.Errorf("cannot convert %T to Json", v)
	}
}
