// Package xmltree provides a minimal abstract XML element tree and a
// whitespace-exact pretty-printer for it.
//
// An Element is nothing but tag, attributes, text, and ordered children,
// so the printer has no dependency on any parsing library's tree type.
// An Element with an empty Tag is a grouping node: its text is written as
// a raw indented line with no markup, which is how <data> payloads get
// their presentation indentation.
package xmltree

type Attr struct {
	Name  string
	Value string
}

type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element
}

func New(tag string, children ...*Element) *Element {
	return &Element{Tag: tag, Children: children}
}

func NewText(tag, text string) *Element {
	return &Element{Tag: tag, Text: text}
}

// NewGroup returns a tagless grouping element wrapping raw text.
func NewGroup(text string) *Element {
	return &Element{Text: text}
}

func (el *Element) WithAttr(name, value string) *Element {
	el.Attrs = append(el.Attrs, Attr{Name: name, Value: value})
	return el
}

func (el *Element) Append(children ...*Element) *Element {
	el.Children = append(el.Children, children...)
	return el
}
