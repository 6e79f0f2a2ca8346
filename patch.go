package jval

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/go-jval/ast"
	"github.com/signadot/go-jval/debug"
	"github.com/signadot/go-jval/encode"
)

// Patch applies an RFC 6902 patch document to doc and returns the
// patched tree. Both trees cross the boundary as compact JSON text.
func Patch(doc, patch *ast.Json) (*ast.Json, error) {
	if debug.Patch() {
		debug.Logf("patch %s\non %s\n", debug.Tree{Json: patch}, debug.Tree{Json: doc})
	}
	ops, err := jsonpatch.DecodePatch([]byte(encode.ToJson(patch)))
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply([]byte(encode.ToJson(doc)))
	if err != nil {
		return nil, err
	}
	return ast.Parse(out)
}

// Merge applies an RFC 7386 merge patch to doc.
func Merge(doc, patch *ast.Json) (*ast.Json, error) {
	out, err := jsonpatch.MergePatch(
		[]byte(encode.ToJson(doc)),
		[]byte(encode.ToJson(patch)),
	)
	if err != nil {
		return nil, err
	}
	return ast.Parse(out)
}
