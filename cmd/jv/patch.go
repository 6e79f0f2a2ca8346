package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	jval "github.com/signadot/go-jval"
)

func jvPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	patch, err := readDoc(args[0])
	if err != nil {
		return err
	}
	apply := jval.Patch
	if cfg.Merge {
		apply = jval.Merge
	}
	for _, arg := range orStdin(args[1:]) {
		j, err := readDoc(arg)
		if err != nil {
			return err
		}
		res, err := apply(j, patch)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := cfg.write(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
