// Package encode serializes ir.Node trees as property list documents.
package encode

import (
	"io"

	"github.com/flying-sheep/plist/debug"
	"github.com/flying-sheep/plist/ir"
	"github.com/flying-sheep/plist/xmltree"
)

// Header is the fixed document header, byte-exact per the plist DTD
// contract. The second DOCTYPE line is indented with a tab.
const Header = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple Computer//DTD PLIST 1.0//EN"
	"http://www.apple.com/DTDs/PropertyList-1.0.dtd">
`

type EncState struct {
	header bool
}

type EncodeOption func(*EncState)

// EncodeHeader controls emission of the XML declaration and DOCTYPE.
// It is on by default.
func EncodeHeader(v bool) EncodeOption {
	return func(es *EncState) { es.header = v }
}

// Encode serializes a value as a complete property list document: the
// fixed header, the plist wrapper, and the canonical tab-indented body.
// The plist element's immediate child stays at the left margin; levels
// below indent by one tab each.
func Encode(n *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{header: true}
	for _, opt := range opts {
		opt(es)
	}
	tree, err := ToTree(n)
	if err != nil {
		return err
	}
	if debug.Encode() {
		debug.Logf("encode: %s value\n", n.Type)
	}
	if es.header {
		if _, err := w.Write([]byte(Header)); err != nil {
			return err
		}
	}
	return xmltree.Encode(tree, w, xmltree.RootIncrement(0))
}
