package encode

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/flying-sheep/plist/b64"
	"github.com/flying-sheep/plist/ir"
	"github.com/flying-sheep/plist/iso8601"
	"github.com/flying-sheep/plist/xmltree"
)

// ToTree converts a value into a plist element tree, wrapped in the
// <plist version="1.0"> document element.
func ToTree(n *ir.Node) (*xmltree.Element, error) {
	child, err := toElement(n)
	if err != nil {
		return nil, err
	}
	return xmltree.New("plist", child).WithAttr("version", "1.0"), nil
}

func toElement(n *ir.Node) (*xmltree.Element, error) {
	switch n.Type {
	case ir.NullType:
		return xmltree.New("undef"), nil
	case ir.BoolType:
		if n.Bool {
			return xmltree.New("true"), nil
		}
		return xmltree.New("false"), nil
	case ir.IntType:
		return xmltree.NewText("integer", strconv.FormatInt(n.Int, 10)), nil
	case ir.RealType:
		return xmltree.NewText("real", formatReal(n.Real)), nil
	case ir.StringType:
		return xmltree.NewText("string", n.String), nil
	case ir.DateType:
		return xmltree.NewText("date", iso8601.Format(n.Time)), nil
	case ir.DataType:
		// the base64 token goes in a grouping child so the printer
		// indents it; the token itself carries no line breaks
		return xmltree.New("data", xmltree.NewGroup(b64.Encode(n.Data))), nil
	case ir.ArrayType:
		el := xmltree.New("array")
		for _, v := range n.Values {
			child, err := toElement(v)
			if err != nil {
				return nil, err
			}
			el.Append(child)
		}
		return el, nil
	case ir.DictType:
		return dictToElement(n)
	default:
		return nil, fmt.Errorf("%w: cannot handle %v of type %s", ir.ErrUnsupportedValue, n, n.Type)
	}
}

func dictToElement(n *ir.Node) (*xmltree.Element, error) {
	order := make([]int, len(n.Keys))
	for i := range order {
		order[i] = i
	}
	if n.Sorted {
		sort.Slice(order, func(i, j int) bool {
			return n.Keys[order[i]] < n.Keys[order[j]]
		})
	}
	el := xmltree.New("dict")
	for _, i := range order {
		val, err := toElement(n.Values[i])
		if err != nil {
			return nil, err
		}
		el.Append(xmltree.NewText("key", n.Keys[i]), val)
	}
	return el, nil
}

// formatReal emits the shortest decimal text that round-trips exactly,
// with a forced fraction so the text still reads as a real. Non-finite
// values stay as their bare names (NaN, +Inf, -Inf), which parse back.
func formatReal(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(v, 0) && !math.IsNaN(v) {
		s += ".0"
	}
	return s
}
