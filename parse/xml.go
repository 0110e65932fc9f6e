package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/flying-sheep/plist/xmltree"
)

// Tree parses a UTF-8 XML document into an xmltree.Element. This is the
// only place the codec touches an XML parsing library; everything past
// it operates on the abstract element tree.
//
// An element's text is the character data before its first child; data
// after a child (tail text) is dropped, matching etree-style trees.
func Tree(d []byte) (*xmltree.Element, error) {
	dec := xml.NewDecoder(bytes.NewReader(bytes.TrimSpace(d)))
	var (
		root  *xmltree.Element
		stack []*xmltree.Element
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &xmltree.Element{Tag: t.Name.Local}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, xmltree.Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple document elements", ErrMalformedDocument)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			cur := stack[len(stack)-1]
			if len(cur.Children) == 0 {
				cur.Text += string(t)
			}
		}
		// ProcInst, Directive and Comment tokens carry no document data
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no document element", ErrMalformedDocument)
	}
	return root, nil
}
