package main

import (
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/flying-sheep/plist/format"
)

type MainConfig struct {
	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	InFormat, OutFormat *format.Format

	Convert *cli.Command
}

func (cfg *ConvertConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return format.PListFormat
}

// outFormat resolves the output format: an explicit -O wins, then the
// suffix of the -o output file, then yaml.
func (cfg *ConvertConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Out != "" && cfg.Out != "-" {
		for _, f := range format.AllFormats() {
			if strings.HasSuffix(cfg.Out, f.Suffix()) {
				return f
			}
		}
	}
	return format.YAMLFormat
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Color bool `cli:"name=color desc='force colored output'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge bool `cli:"name=merge desc='treat the patch as an RFC 7386 merge patch'"`

	Patch *cli.Command
}
