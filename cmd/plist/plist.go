package main

import (
	"errors"
	"os"

	"github.com/scott-cotton/cli"
)

func plistMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return dumpReader(cc.Out, cc.In)
	}
	if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
		err = sub.Run(cc, args[1:])
		if errors.Is(err, cli.ErrUsage) {
			sub.Usage(cc, err)
			os.Exit(sub.Exit(cc, err))
		}
		return err
	}
	// bare file arguments decode and dump, like the subcommand
	return dumpFiles(cc.Out, args)
}
