// Package jval is the top-level surface of the go-jval JSON value
// toolkit. It re-exports the common entry points for parsing, encoding,
// and cursor-based tree access, and adds document-level operations
// (diff, patch, filter, yaml bridging) built on the ast package.
//
// The subpackages hold the machinery: ast for the value model and
// traversal, encode and decode for the streaming typed codec protocol,
// derive for product/sum codec derivation, and token for the lexer and
// writer primitives.
package jval

import (
	"io"

	"github.com/signadot/go-jval/ast"
	"github.com/signadot/go-jval/debug"
	"github.com/signadot/go-jval/encode"
)

// Parse decodes one JSON value, rejecting trailing non-whitespace.
func Parse(d []byte) (*ast.Json, error) {
	return ast.Parse(d)
}

// ParseReader decodes one JSON value from r.
func ParseReader(r io.Reader) (*ast.Json, error) {
	return ast.ParseReader(r)
}

// ToJson renders j in compact form.
func ToJson(j *ast.Json) string {
	return encode.ToJson(j)
}

// ToJsonPretty renders j with two-space indentation.
func ToJsonPretty(j *ast.Json) string {
	return encode.ToJsonPretty(j)
}

// Get resolves the cursor path expression against doc.
func Get(doc *ast.Json, path string) (*ast.Json, error) {
	c, err := ast.ParseCursor(path)
	if err != nil {
		return nil, err
	}
	if debug.Cursor() {
		debug.Logf("get %s in %s\n", c.String(), debug.Tree{Json: doc})
	}
	return doc.Get(c)
}

// Delete removes the value at the cursor path expression, returning the
// updated tree. doc is not modified; unchanged subtrees are shared.
func Delete(doc *ast.Json, path string) (*ast.Json, error) {
	c, err := ast.ParseCursor(path)
	if err != nil {
		return nil, err
	}
	if debug.Cursor() {
		debug.Logf("delete %s in %s\n", c.String(), debug.Tree{Json: doc})
	}
	return doc.Delete(c)
}
