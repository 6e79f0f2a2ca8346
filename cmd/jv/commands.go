package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jv").
		WithSynopsis("jv [opts] command [opts]").
		WithDescription("jv is a tool for working with json values.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jvMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			GetCommand(cfg),
			DelCommand(cfg),
			FilterCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			YamlCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("reformat json documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jvFmt(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get path [files]").
		WithDescription("resolve a cursor path, like a.b[0], against json documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jvGet(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("del").
		WithAliases("d", "delete").
		WithSynopsis("del path [files]").
		WithDescription("delete the value at a cursor path from json documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jvDel(cfg, cc, args)
		})
	cfg.Del = cmd
	return cmd
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("filter").
		WithAliases("q", "query").
		WithSynopsis("filter expr [files]").
		WithDescription("evaluate an expression, with the document bound to 'doc'").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jvFilter(cfg, cc, args)
		})
	cfg.Filter = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff file1 file2").
		WithDescription("diff two json documents, ignoring object field order").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jvDiff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch patchfile [files]").
		WithDescription("apply an RFC 6902 patch, or with -m an RFC 7386 merge patch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jvPatch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func YamlCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &YamlConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("yaml").
		WithAliases("y").
		WithSynopsis("yaml [-r] [files]").
		WithDescription("convert json to yaml, or with -r yaml to json").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jvYaml(cfg, cc, args)
		})
	cfg.Yaml = cmd
	return cmd
}
