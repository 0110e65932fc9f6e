package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/flying-sheep/plist/format"
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

	return cli.NewCommandAt(&cfg.Main, "plist").
		WithSynopsis("plist [opts] [command [opts]] [files]").
		WithDescription("plist is a tool for working with Apple XML property lists.\n" +
			"Without a command it decodes its input (files or stdin) and prints\n" +
			"a debug representation of the value.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return plistMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			ViewCommand(cfg),
			ConvertCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("dump").
		WithAliases("d").
		WithSynopsis("dump [files]").
		WithDescription("decode property lists and print a debug representation").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("decode property lists and re-encode them canonically").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: plist/p, json/j, yaml/y (default plist)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: plist/p, json/j, yaml/y (default: by -o suffix, else yaml)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
	}
	cmd := cli.NewCommand("convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [-I fmt] [-O fmt] [files]").
		WithDescription("convert between property lists, YAML, and JSON").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <expr> [file]").
		WithDescription("query a decoded property list with an expression;\n" +
			"dict keys are bound as variables and `doc` is the whole value").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("compare the canonical encodings of two property lists").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
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
		WithSynopsis("patch <patch.json> [file]").
		WithDescription("apply an RFC 6902 JSON Patch (or, with -merge, an\n" +
			"RFC 7386 merge patch) to a property list").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func (cfg *ConvertConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}
