package jval

import (
	"github.com/expr-lang/expr"

	"github.com/signadot/go-jval/ast"
	"github.com/signadot/go-jval/debug"
)

// Filter evaluates an expression against doc and returns the result as
// a tree. The document is bound to the identifier "doc"; object fields
// are reached as doc.field, array elements as doc[i], and the usual
// expression built-ins (filter, map, len, ...) apply.
func Filter(doc *ast.Json, src string) (*ast.Json, error) {
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, err
	}
	env := map[string]any{"doc": ast.ToAny(doc)}
	out, err := expr.Run(prg, env)
	if err != nil {
		return nil, err
	}
	if debug.Filter() {
		debug.Logf("filter %q -> %v\n", src, out)
	}
	return ast.FromAny(out)
}
