package encode

import (
	"github.com/signadot/go-jval/ast"
	"github.com/signadot/go-jval/token"
)

// Json is the encoder for AST values. Object entries keep their
// insertion order; use ast.Canonical first when bit-identical output
// for structurally equal trees is required.
func Json() Encoder[*ast.Json] {
	return New(encodeJson)
}

// ToJson renders a tree compactly.
func ToJson(j *ast.Json) string {
	return Encode(Json(), j)
}

// ToJsonPretty renders a tree with two-space indentation.
func ToJsonPretty(j *ast.Json) string {
	return EncodePretty(Json(), j)
}

func encodeJson(j *ast.Json, indent *int, w token.Writer) {
	switch j.Type {
	case ast.NullType:
		w.WriteString("null")
	case ast.BoolType:
		if j.Bool {
			w.WriteString("true")
		} else {
			w.WriteString("false")
		}
	case ast.NumberType:
		encodeJsonNumber(j, w)
	case ast.StringType:
		token.WriteQuoted(w, j.Str)
	case ast.ArrayType:
		if len(j.Values) == 0 {
			w.WriteString("[]")
			return
		}
		w.WriteByte('[')
		inner := Inc(indent)
		for i, v := range j.Values {
			if i > 0 {
				w.WriteByte(',')
			}
			Pad(inner, w)
			encodeJson(v, inner, w)
		}
		Pad(indent, w)
		w.WriteByte(']')
	case ast.ObjectType:
		if len(j.Fields) == 0 {
			w.WriteString("{}")
			return
		}
		w.WriteByte('{')
		inner := Inc(indent)
		for i, f := range j.Fields {
			if i > 0 {
				w.WriteByte(',')
			}
			Pad(inner, w)
			token.WriteQuoted(w, f)
			Colon(inner, w)
			encodeJson(j.Values[i], inner, w)
		}
		Pad(indent, w)
		w.WriteByte('}')
	default:
		panic("type")
	}
}

func encodeJsonNumber(j *ast.Json, w token.Writer) {
	if j.Float64 != nil {
		w.WriteString(floatText(*j.Float64))
		return
	}
	w.WriteString(j.NumberText())
}
