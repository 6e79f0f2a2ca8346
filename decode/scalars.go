package decode

import (
	"math"
	"strconv"

	"github.com/signadot/go-jval/token"
)

func String() Decoder[string] {
	return New(func(trace []Step, in *token.Reader) (string, error) {
		s, err := in.ReadString()
		if err != nil {
			return "", fail(trace, err)
		}
		return s, nil
	})
}

func Bool() Decoder[bool] {
	return New(func(trace []Step, in *token.Reader) (bool, error) {
		b, err := in.ReadBool()
		if err != nil {
			return false, fail(trace, err)
		}
		return b, nil
	})
}

func Int() Decoder[int] {
	return Map(Int64(), func(v int64) int { return int(v) })
}

func Int64() Decoder[int64] {
	return New(func(trace []Step, in *token.Reader) (int64, error) {
		raw, err := in.ReadNumber()
		if err != nil {
			return 0, fail(trace, err)
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, newError(trace, "malformed integer "+raw)
		}
		return v, nil
	})
}

// Float64 accepts numeric literals plus the quoted non-finite forms
// "NaN", "Infinity" and "-Infinity" that Float64 encoders emit.
func Float64() Decoder[float64] {
	return New(func(trace []Step, in *token.Reader) (float64, error) {
		c, err := in.Peek()
		if err != nil {
			return 0, fail(trace, err)
		}
		if c == '"' {
			s, err := in.ReadString()
			if err != nil {
				return 0, fail(trace, err)
			}
			switch s {
			case "NaN":
				return math.NaN(), nil
			case "Infinity":
				return math.Inf(1), nil
			case "-Infinity":
				return math.Inf(-1), nil
			}
			return 0, newError(trace, "malformed number "+strconv.Quote(s))
		}
		raw, err := in.ReadNumber()
		if err != nil {
			return 0, fail(trace, err)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, newError(trace, "malformed number "+raw)
		}
		return v, nil
	})
}

// Null consumes a null literal.
func Null() Decoder[struct{}] {
	return New(func(trace []Step, in *token.Reader) (struct{}, error) {
		if err := in.ReadNull(); err != nil {
			return struct{}{}, fail(trace, err)
		}
		return struct{}{}, nil
	})
}
