// Package plist reads and writes Apple XML property lists.
//
// A document is decoded into an ir.Node value tree and encoded back from
// one; see the parse and encode packages for the codec halves and the ir
// package for the value model. This package is the convenience surface.
package plist

import (
	"bytes"
	"io"

	"github.com/flying-sheep/plist/encode"
	"github.com/flying-sheep/plist/ir"
	"github.com/flying-sheep/plist/parse"
)

// Decode converts a property list document to a value tree.
func Decode(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// DecodeReader reads a full property list document from r and decodes it.
func DecodeReader(r io.Reader, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// Encode writes n to w as a complete property list document.
func Encode(n *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(n, w, opts...)
}

// EncodeString returns n as a complete property list document.
func EncodeString(n *ir.Node, opts ...encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
