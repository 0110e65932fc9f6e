package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/flying-sheep/plist"
	"github.com/flying-sheep/plist/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: get requires <expr> and at most one file, got %v", cli.ErrUsage, args)
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	node, err := getPlistFile(cc, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}

	env := map[string]any{"doc": ir.ToAny(node)}
	for key, val := range ir.ToMap(node) {
		env[key] = ir.ToAny(val)
	}
	program, err := expr.Compile(args[0])
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", args[0], err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return fmt.Errorf("error evaluating %q: %w", args[0], err)
	}
	res, err := ir.FromAny(out)
	if err != nil {
		return err
	}
	return plist.Encode(res, cc.Out)
}
