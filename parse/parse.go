// Package parse decodes property list documents into ir.Node trees.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/flying-sheep/plist/b64"
	"github.com/flying-sheep/plist/debug"
	"github.com/flying-sheep/plist/ir"
	"github.com/flying-sheep/plist/iso8601"
	"github.com/flying-sheep/plist/xmltree"
)

// Parse decodes a property list document.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	root, err := Tree(d)
	if err != nil {
		return nil, err
	}
	return FromTree(root, opts...)
}

// FromTree decodes a parsed element tree. The root must be a single
// plist element wrapping exactly one value element.
func FromTree(root *xmltree.Element, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if root.Tag != "plist" || len(root.Children) != 1 {
		return nil, fmt.Errorf("%w: want a single plist element with one child, got <%s> with %d",
			ErrMalformedDocument, root.Tag, len(root.Children))
	}
	if debug.Parse() {
		debug.Logf("parse: plist document, value element <%s>\n", root.Children[0].Tag)
	}
	return fromElement(root.Children[0], pOpts)
}

func fromElement(el *xmltree.Element, opts *parseOpts) (*ir.Node, error) {
	switch el.Tag {
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	case "undef":
		return ir.Null(), nil
	case "integer":
		v, err := strconv.ParseInt(strings.TrimSpace(el.Text), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: <integer> text %q", ErrInvalidNumber, el.Text)
		}
		return ir.FromInt(v), nil
	case "real":
		v, err := strconv.ParseFloat(strings.TrimSpace(el.Text), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: <real> text %q", ErrInvalidNumber, el.Text)
		}
		return ir.FromReal(v), nil
	case "string":
		return ir.FromString(el.Text), nil
	case "date":
		t, err := iso8601.Parse(el.Text, opts.dateOpts()...)
		if err != nil {
			return nil, err
		}
		return ir.FromDate(t), nil
	case "data":
		d, err := b64.Decode(el.Text)
		if err != nil {
			return nil, err
		}
		return ir.FromData(d), nil
	case "array":
		vs := make([]*ir.Node, len(el.Children))
		for i, child := range el.Children {
			v, err := fromElement(child, opts)
			if err != nil {
				return nil, err
			}
			vs[i] = v
		}
		return ir.FromSlice(vs), nil
	case "dict":
		return fromDict(el, opts)
	default:
		return nil, fmt.Errorf("%w: <%s> is not in the plist vocabulary", ErrUnknownTag, el.Tag)
	}
}

// fromDict decodes strictly alternating key/value children. A repeated
// key keeps the position of its first occurrence and the value of its
// last.
func fromDict(el *xmltree.Element, opts *parseOpts) (*ir.Node, error) {
	children := el.Children
	if len(children)%2 != 0 {
		return nil, fmt.Errorf("%w: <dict> has %d children", ErrIncompleteDictionary, len(children))
	}
	kvs := make([]ir.KeyVal, 0, len(children)/2)
	for i := 0; i < len(children); i += 2 {
		key := children[i]
		if key.Tag != "key" {
			return nil, fmt.Errorf("%w: <%s> where a key was expected", ErrMissingKeyTag, key.Tag)
		}
		val, err := fromElement(children[i+1], opts)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key.Text, Val: val})
	}
	return ir.FromKeyVals(kvs), nil
}
