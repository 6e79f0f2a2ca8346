package jval

import (
	"github.com/goccy/go-yaml"

	"github.com/signadot/go-jval/ast"
)

// FromYaml parses a YAML document into a tree. Mapping keys must be
// strings.
func FromYaml(d []byte) (*ast.Json, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return ast.FromAny(v)
}

// ToYaml renders j as a YAML document.
func ToYaml(j *ast.Json) ([]byte, error) {
	return yaml.Marshal(ast.ToAny(j))
}
