package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/flying-sheep/plist"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		node, err := getPlistFile(cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := plist.Encode(node, cc.Out); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
