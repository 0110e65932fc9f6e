package xmltree

import (
	"io"
	"strings"
)

type encState struct {
	indent        string
	rootIncrement int
}

type EncodeOption func(*encState)

// Indent sets the per-level indent string. The default is one tab.
func Indent(s string) EncodeOption {
	return func(es *encState) { es.indent = s }
}

// RootIncrement sets the indent increment between the root element and
// its immediate children. Zero keeps a document wrapper's children at
// the wrapper's own level; levels below always indent by one.
func RootIncrement(n int) EncodeOption {
	return func(es *encState) { es.rootIncrement = n }
}

// Encode renders the element tree as indented text.
//
// An element with no text and no children self-closes; an element with
// text and no children is emitted on one line; an element with children
// places each child one level deeper and the closing tag on its own
// line aligned with the opening tag. Tagless grouping elements emit
// their raw indented text without markup.
func Encode(el *Element, w io.Writer, opts ...EncodeOption) error {
	es := &encState{indent: "\t", rootIncrement: 1}
	for _, opt := range opts {
		opt(es)
	}
	return encodeElement(el, w, 0, es.rootIncrement, es)
}

func encodeElement(el *Element, w io.Writer, depth, increment int, es *encState) error {
	ind := strings.Repeat(es.indent, depth)

	if el.Tag == "" {
		if el.Text != "" {
			if err := writeString(w, ind+escapeText(el.Text)+"\n"); err != nil {
				return err
			}
		}
		for _, child := range el.Children {
			if err := encodeElement(child, w, depth+increment, 1, es); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeString(w, ind+"<"+el.Tag); err != nil {
		return err
	}
	for _, attr := range el.Attrs {
		if err := writeString(w, " "+attr.Name+`="`+escapeAttr(attr.Value)+`"`); err != nil {
			return err
		}
	}
	if el.Text == "" && len(el.Children) == 0 {
		return writeString(w, "/>\n")
	}
	if err := writeString(w, ">"); err != nil {
		return err
	}
	if el.Text != "" {
		if err := writeString(w, escapeText(el.Text)); err != nil {
			return err
		}
	} else {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	for _, child := range el.Children {
		if err := encodeElement(child, w, depth+increment, 1, es); err != nil {
			return err
		}
	}
	if el.Text == "" {
		if err := writeString(w, ind); err != nil {
			return err
		}
	}
	return writeString(w, "</"+el.Tag+">\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
