package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	jval "github.com/signadot/go-jval"
)

func jvDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	a, err := readDoc(args[0])
	if err != nil {
		return err
	}
	b, err := readDoc(args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	var out string
	if cfg.useColor(cc.Out) {
		out = jval.DiffPretty(a, b)
	} else {
		out = jval.DiffText(a, b)
	}
	if out == "" {
		return nil
	}
	if _, err := cc.Out.Write([]byte(out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
