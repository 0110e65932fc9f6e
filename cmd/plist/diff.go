package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/flying-sheep/plist"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := getPlistFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := getPlistFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	diffs, err := plist.Diff(from, to)
	if err != nil {
		return err
	}
	if diffs == nil {
		return nil
	}
	if err := writeDiffs(cc.Out, diffs, cfg.useColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func (cfg *DiffConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func writeDiffs(w io.Writer, diffs []diffpatch.Diff, colored bool) error {
	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed, color.CrossedOut)
	for _, d := range diffs {
		var err error
		switch d.Type {
		case diffpatch.DiffEqual:
			_, err = io.WriteString(w, d.Text)
		case diffpatch.DiffInsert:
			if colored {
				_, err = ins.Fprint(w, d.Text)
			} else {
				_, err = io.WriteString(w, "{+"+d.Text+"+}")
			}
		case diffpatch.DiffDelete:
			if colored {
				_, err = del.Fprint(w, d.Text)
			} else {
				_, err = io.WriteString(w, "[-"+d.Text+"-]")
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
