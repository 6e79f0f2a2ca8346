package token

import "errors"

var (
	ErrBadEscape  = errors.New("bad string escape")
	ErrBadLiteral = errors.New("bad literal")
	ErrShortRead  = errors.New("unexpected end of input")
)
