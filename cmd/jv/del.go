package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/go-jval/ast"
)

func jvDel(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires a path argument", cli.ErrUsage)
	}
	c, err := ast.ParseCursor(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, arg := range orStdin(args[1:]) {
		j, err := readDoc(arg)
		if err != nil {
			return err
		}
		res, err := j.Delete(c)
		if err != nil {
			return fmt.Errorf("error deleting %q in %s: %w", args[0], arg, err)
		}
		if err := cfg.write(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
