package ast

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/go-jval/token"
)

// Parse parses a single JSON document into a Json tree. Trailing
// non-whitespace input is an error.
func Parse(d []byte) (*Json, error) {
	r := token.NewReaderBytes(d)
	j, err := FromReader(r)
	if err != nil {
		return nil, err
	}
	if c, err := r.NextToken(); err == nil {
		return nil, fmt.Errorf("unexpected trailing character '%c'", c)
	}
	return j, nil
}

// ParseReader parses one JSON value from r, leaving the reader
// positioned after it.
func ParseReader(r io.Reader) (*Json, error) {
	return FromReader(token.NewReader(r))
}

// FromReader reads one JSON value off a token.Reader.
func FromReader(r *token.Reader) (*Json, error) {
	c, err := r.NextToken()
	if err != nil {
		return nil, err
	}
	switch c {
	case '{':
		return objectFromReader(r)
	case '[':
		return arrayFromReader(r)
	case '"':
		r.Retract()
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return FromString(s), nil
	case 't', 'f':
		r.Retract()
		b, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		return FromBool(b), nil
	case 'n':
		r.Retract()
		if err := r.ReadNull(); err != nil {
			return nil, err
		}
		return Null(), nil
	default:
		r.Retract()
		raw, err := r.ReadNumber()
		if err != nil {
			return nil, err
		}
		return numberFromText(raw)
	}
}

func objectFromReader(r *token.Reader) (*Json, error) {
	res := &Json{Type: ObjectType}
	more, err := r.FirstField()
	if err != nil {
		return nil, err
	}
	for more {
		key, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		if err := r.Expect(':'); err != nil {
			return nil, err
		}
		val, err := FromReader(r)
		if err != nil {
			return nil, err
		}
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, val)
		if more, err = r.NextField(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func arrayFromReader(r *token.Reader) (*Json, error) {
	res := &Json{Type: ArrayType}
	more, err := r.FirstElement()
	if err != nil {
		return nil, err
	}
	for more {
		val, err := FromReader(r)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, val)
		if more, err = r.NextElement(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// numberFromText classifies a raw numeric literal as int64, float64 or,
// when neither represents it exactly, raw text.
func numberFromText(raw string) (*Json, error) {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return FromInt(i), nil
	}
	if !strings.ContainsAny(raw, ".eE") {
		// an integer beyond int64 keeps its raw text
		return FromNumber(raw), nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			// a magnitude float64 cannot hold keeps its raw text
			return FromNumber(raw), nil
		}
		return nil, fmt.Errorf("%w: %q", token.ErrBadLiteral, raw)
	}
	return FromFloat(f), nil
}
