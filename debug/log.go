package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/go-jval/ast"
	"github.com/signadot/go-jval/encode"
)

type JSON any

// Tree wraps an AST value so %s formats it as pretty JSON.
type Tree struct{ *ast.Json }

func (t Tree) String() string {
	return encode.ToJsonPretty(t.Json)
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ast.Json:
			args[i] = encode.ToJsonPretty(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
