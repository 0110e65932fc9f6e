package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/flying-sheep/plist"
	"github.com/flying-sheep/plist/format"
	"github.com/flying-sheep/plist/ir"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := convertFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func convertFile(cfg *ConvertConfig, cc *cli.Context, file string) error {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", file, err)
	}
	node, err := readAs(cfg.inFormat(), d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if err := writeAs(cfg.outFormat(), node, cc.Out); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}

func readAs(f format.Format, d []byte) (*ir.Node, error) {
	switch {
	case f.IsPList():
		return plist.Decode(d)
	case f.IsYAML():
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, err
		}
		return ir.FromAny(v)
	case f.IsJSON():
		var v any
		if err := json.Unmarshal(d, &v); err != nil {
			return nil, err
		}
		return ir.FromAny(v)
	default:
		return nil, format.ErrBadFormat
	}
}

func writeAs(f format.Format, node *ir.Node, w io.Writer) error {
	switch {
	case f.IsPList():
		return plist.Encode(node, w)
	case f.IsYAML():
		d, err := yaml.Marshal(ir.ToAny(node))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case f.IsJSON():
		d, err := json.MarshalIndent(ir.ToAny(node), "", "  ")
		if err != nil {
			return err
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
		_, err = w.Write([]byte("\n"))
		return err
	default:
		return format.ErrBadFormat
	}
}
