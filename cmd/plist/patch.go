package main

import (
	"encoding/json"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/flying-sheep/plist"
	"github.com/flying-sheep/plist/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires <patch.json> and at most one file, got %v", cli.ErrUsage, args)
	}
	patchData, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", args[0], err)
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	node, err := getPlistFile(cc, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	docJSON, err := json.Marshal(ir.ToAny(node))
	if err != nil {
		return err
	}

	var patched []byte
	if cfg.Merge {
		patched, err = jsonpatch.MergePatch(docJSON, patchData)
		if err != nil {
			return fmt.Errorf("error applying merge patch: %w", err)
		}
	} else {
		ops, err := jsonpatch.DecodePatch(patchData)
		if err != nil {
			return fmt.Errorf("error decoding patch %q: %w", args[0], err)
		}
		patched, err = ops.Apply(docJSON)
		if err != nil {
			return fmt.Errorf("error applying patch: %w", err)
		}
	}

	var out any
	if err := json.Unmarshal(patched, &out); err != nil {
		return err
	}
	res, err := ir.FromAny(out)
	if err != nil {
		return err
	}
	return plist.Encode(res, cc.Out)
}
