package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func jvFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range orStdin(args) {
		j, err := readDoc(arg)
		if err != nil {
			return err
		}
		if err := cfg.write(cc.Out, j); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
