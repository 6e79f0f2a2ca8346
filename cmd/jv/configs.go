package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/mattn/go-isatty"

	"github.com/signadot/go-jval/ast"
	"github.com/signadot/go-jval/debug"
	"github.com/signadot/go-jval/encode"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='encode output in compact form'"`
	Color   bool `cli:"name=color desc='encode output with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// write renders j to w per the output options, followed by a newline.
func (cfg *MainConfig) write(w io.Writer, j *ast.Json) error {
	enc := encode.Json()
	color := cfg.useColor(w)
	if color {
		enc = encode.ColorJson(encode.NewColors())
	}
	var indent *int
	if !cfg.Compact {
		zero := 0
		indent = &zero
	}
	if debug.Encode() {
		debug.Logf("encode compact=%v color=%v\n", cfg.Compact, color)
	}
	if err := encode.EncodeTo(enc, j, indent, w); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DelConfig struct {
	*MainConfig

	Del *cli.Command
}

type FilterConfig struct {
	*MainConfig
	File bool `cli:"name=f desc='read the expression from a file'"`

	Filter *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m aliases=merge desc='apply as an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type YamlConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='convert yaml input to json'"`

	Yaml *cli.Command
}
