package ast

import "fmt"

// Navigation errors are a closed set of typed values returned by Get and
// Delete. Callers branch on the concrete type to decide recovery.

type NoSuchFieldError struct {
	Field string
}

func (e *NoSuchFieldError) Error() string {
	return fmt.Sprintf("No such field: '%s'", e.Field)
}

type IndexOutOfBoundsError struct {
	Index, Len int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index out of bounds %d (len %d)", e.Index, e.Len)
}

type TypeMismatchError struct {
	Expected, Actual Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
}
