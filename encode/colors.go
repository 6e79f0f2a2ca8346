package encode

import (
	"strings"

	"github.com/signadot/go-jval/ast"
	"github.com/signadot/go-jval/token"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ast.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ast.Types() {
		colors.Map[Colorable{Type: t, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ast.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ast.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = ast.BoolType
	colors.Map[able] = color.CyanString

	able.Type = ast.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = ast.ObjectType
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ast.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ast.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// ColorJson renders AST values like Json but with terminal colors
// applied per type. Intended for interactive viewing, not for output
// that is parsed back.
func ColorJson(colors *Colors) Encoder[*ast.Json] {
	return New(func(j *ast.Json, indent *int, w token.Writer) {
		encodeColorJson(j, indent, w, colors)
	})
}

func encodeColorJson(j *ast.Json, indent *int, w token.Writer, colors *Colors) {
	value := func(v string) {
		w.WriteString(colors.Color(j.Type, ValueColor, v))
	}
	sep := func(v string) {
		w.WriteString(colors.Color(j.Type, SepColor, v))
	}
	switch j.Type {
	case ast.NullType:
		value("null")
	case ast.BoolType:
		if j.Bool {
			value("true")
		} else {
			value("false")
		}
	case ast.NumberType:
		var raw token.StringWriter
		encodeJsonNumber(j, &raw)
		value(raw.String())
	case ast.StringType:
		value(token.Quote(j.Str))
	case ast.ArrayType:
		if len(j.Values) == 0 {
			sep("[]")
			return
		}
		sep("[")
		inner := Inc(indent)
		for i, v := range j.Values {
			if i > 0 {
				sep(",")
			}
			Pad(inner, w)
			encodeColorJson(v, inner, w, colors)
		}
		Pad(indent, w)
		sep("]")
	case ast.ObjectType:
		if len(j.Fields) == 0 {
			sep("{}")
			return
		}
		sep("{")
		inner := Inc(indent)
		for i, f := range j.Fields {
			if i > 0 {
				sep(",")
			}
			Pad(inner, w)
			w.WriteString(colors.Color(ast.ObjectType, FieldColor, token.Quote(f)))
			Colon(inner, w)
			encodeColorJson(j.Values[i], inner, w, colors)
		}
		Pad(indent, w)
		sep("}")
	default:
		panic("type")
	}
}
