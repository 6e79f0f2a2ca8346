package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-jval/ast"
)

// readDoc parses the json document named by arg, with "-" meaning
// stdin.
func readDoc(arg string) (*ast.Json, error) {
	d, err := readFile(arg)
	if err != nil {
		return nil, err
	}
	j, err := ast.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return j, nil
}

func readFile(arg string) ([]byte, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return d, nil
}

// orStdin substitutes stdin when no file arguments are given.
func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
