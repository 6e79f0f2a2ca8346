package decode

import (
	"strconv"
	"strings"
)

// Step is one location step in a decode error trace: an object field,
// an array index, or a sum-type variant tag.
type Step struct {
	kind  stepKind
	field string
	index int
	tag   string
}

type stepKind int

const (
	fieldStep stepKind = iota
	indexStep
	tagStep
)

func FieldStep(name string) Step {
	return Step{kind: fieldStep, field: name}
}

func IndexStep(i int) Step {
	return Step{kind: indexStep, index: i}
}

func TagStep(tag string) Step {
	return Step{kind: tagStep, tag: tag}
}

func (s Step) String() string {
	switch s.kind {
	case fieldStep:
		return "." + s.field
	case indexStep:
		return "[" + strconv.Itoa(s.index) + "]"
	case tagStep:
		return "{" + s.tag + "}"
	}
	return ""
}

// Error is the single structured failure a decode produces. Trace holds
// the location steps from the failure point back to the root, innermost
// first, so messages can name the exact field or element without
// re-walking the input.
type Error struct {
	Trace   []Step
	Message string
}

// NewError builds a located decode error from the working trace, which
// decoders grow root-first while descending. Derived decoders outside
// this package use it for their own failure cases.
func NewError(trace []Step, message string) *Error {
	return newError(trace, message)
}

// Fail wraps a lexer error into a located decode error, passing through
// errors that already carry a trace.
func Fail(trace []Step, err error) error {
	return fail(trace, err)
}

// newError copies the working trace, which decoders grow root-first
// while descending, into innermost-first order.
func newError(trace []Step, message string) *Error {
	rev := make([]Step, len(trace))
	for i, s := range trace {
		rev[len(trace)-1-i] = s
	}
	return &Error{Trace: rev, Message: message}
}

func (e *Error) Error() string {
	var b strings.Builder
	for i := len(e.Trace) - 1; i >= 0; i-- {
		b.WriteString(e.Trace[i].String())
	}
	if b.Len() > 0 {
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	return b.String()
}
