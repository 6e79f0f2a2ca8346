package jval

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/go-jval/ast"
	"github.com/signadot/go-jval/debug"
	"github.com/signadot/go-jval/encode"
)

// Diff returns a line-level diff of the pretty encodings of a and b.
// Both trees are canonicalized first, so trees that are equal up to
// object field order produce no edits.
func Diff(a, b *ast.Json) []diffmatchpatch.Diff {
	at := encode.ToJsonPretty(ast.Canonical(a)) + "\n"
	bt := encode.ToJsonPretty(ast.Canonical(b)) + "\n"
	if debug.Diff() {
		debug.Logf("diff\n%s\nvs\n%s\n", at, bt)
	}
	dmp := diffmatchpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(at, bt)
	diffs := dmp.DiffMain(ac, bc, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// DiffText renders the diff in patch text form; empty when the trees
// are equal.
func DiffText(a, b *ast.Json) string {
	if ast.Equal(a, b) {
		return ""
	}
	dmp := diffmatchpatch.New()
	return dmp.PatchToText(dmp.PatchMake(Diff(a, b)))
}

// DiffPretty renders the diff with ANSI color, inserts green and
// deletes red.
func DiffPretty(a, b *ast.Json) string {
	if ast.Equal(a, b) {
		return ""
	}
	dmp := diffmatchpatch.New()
	return dmp.DiffPrettyText(Diff(a, b))
}
