package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/scott-cotton/cli"

	"github.com/flying-sheep/plist"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return dumpReader(cc.Out, cc.In)
	}
	return dumpFiles(cc.Out, args)
}

func dumpFiles(w io.Writer, files []string) error {
	for _, file := range files {
		if err := dumpFile(w, file); err != nil {
			return err
		}
	}
	return nil
}

func dumpFile(w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := dumpReader(w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func dumpReader(w io.Writer, r io.Reader) error {
	node, err := plist.DecodeReader(r)
	if err != nil {
		return fmt.Errorf("error decoding: %w", err)
	}
	spewConfig.Fdump(w, node)
	return nil
}
