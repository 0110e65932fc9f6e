package plist

import (
	"github.com/flying-sheep/plist/encode"
	"github.com/flying-sheep/plist/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff compares the canonical encodings of from and to, character by
// character. If the documents encode identically, Diff returns nil.
// Headers are omitted so the diff covers only document content.
func Diff(from, to *ir.Node) ([]diffpatch.Diff, error) {
	fromText, err := EncodeString(from, encode.EncodeHeader(false))
	if err != nil {
		return nil, err
	}
	toText, err := EncodeString(to, encode.EncodeHeader(false))
	if err != nil {
		return nil, err
	}
	if fromText == toText {
		return nil, nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(fromText, toText, true)
	return diffCfg.DiffCleanupSemantic(diffs), nil
}
