package encode

import (
	"math"
	"strconv"

	"github.com/signadot/go-jval/token"
)

// String encodes with the standard JSON escapes; non-ASCII text passes
// through unescaped.
func String() Encoder[string] {
	return New(func(s string, _ *int, w token.Writer) {
		token.WriteQuoted(w, s)
	})
}

func Bool() Encoder[bool] {
	return New(func(b bool, _ *int, w token.Writer) {
		w.WriteString(strconv.FormatBool(b))
	})
}

func Int() Encoder[int] {
	return New(func(v int, _ *int, w token.Writer) {
		w.WriteString(strconv.Itoa(v))
	})
}

func Int64() Encoder[int64] {
	return New(func(v int64, _ *int, w token.Writer) {
		w.WriteString(strconv.FormatInt(v, 10))
	})
}

// Float64 emits the canonical decimal text of a float. NaN and the
// infinities have no JSON form; they encode as quoted strings so they
// round-trip within this system.
func Float64() Encoder[float64] {
	return New(func(f float64, _ *int, w token.Writer) {
		w.WriteString(floatText(f))
	})
}

func Float32() Encoder[float32] {
	return New(func(f float32, _ *int, w token.Writer) {
		if nonFinite(float64(f)) {
			w.WriteString(floatText(float64(f)))
			return
		}
		w.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32))
	})
}

func floatText(f float64) string {
	switch {
	case math.IsNaN(f):
		return `"NaN"`
	case math.IsInf(f, 1):
		return `"Infinity"`
	case math.IsInf(f, -1):
		return `"-Infinity"`
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func nonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
