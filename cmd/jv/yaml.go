package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	jval "github.com/signadot/go-jval"
)

func jvYaml(cfg *YamlConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Yaml.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range orStdin(args) {
		if cfg.Reverse {
			d, err := readFile(arg)
			if err != nil {
				return err
			}
			j, err := jval.FromYaml(d)
			if err != nil {
				return fmt.Errorf("error decoding %s: %w", arg, err)
			}
			if err := cfg.write(cc.Out, j); err != nil {
				return err
			}
			continue
		}
		j, err := readDoc(arg)
		if err != nil {
			return err
		}
		d, err := jval.ToYaml(j)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}
