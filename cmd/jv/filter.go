package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	jval "github.com/signadot/go-jval"
)

func jvFilter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires an expression argument", cli.ErrUsage)
	}
	src := args[0]
	if cfg.File {
		d, err := readFile(src)
		if err != nil {
			return err
		}
		src = string(d)
	}
	for _, arg := range orStdin(args[1:]) {
		j, err := readDoc(arg)
		if err != nil {
			return err
		}
		res, err := jval.Filter(j, src)
		if err != nil {
			return fmt.Errorf("error filtering %s: %w", arg, err)
		}
		if err := cfg.write(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
