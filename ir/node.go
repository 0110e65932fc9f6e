package ir

import (
	"bytes"
	"maps"
	"slices"
	"time"
)

type Node struct {
	Type Type

	Bool   bool
	Int    int64
	Real   float64
	String string
	Data   []byte
	Time   time.Time

	// Keys is parallel to Values for DictType nodes. For ArrayType
	// nodes only Values is populated.
	Keys   []string
	Values []*Node

	// Sorted marks a dict built from an unordered source; its keys are
	// kept in lexicographic order on output. Dicts decoded from
	// documents and dicts built with FromKeyVals keep insertion order.
	Sorted bool
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Bool = n.Bool
	dst.Int = n.Int
	dst.Real = n.Real
	dst.String = n.String
	dst.Time = n.Time
	dst.Sorted = n.Sorted
	if n.Data != nil {
		dst.Data = bytes.Clone(n.Data)
	}
	if n.Keys != nil {
		dst.Keys = slices.Clone(n.Keys)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntType, Int: v}
}

func FromReal(v float64) *Node {
	return &Node{Type: RealType, Real: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromData(d []byte) *Node {
	return &Node{Type: DataType, Data: d}
}

func FromDate(t time.Time) *Node {
	return &Node{Type: DateType, Time: t}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an ordered dict. A repeated key overwrites the
// earlier entry in place, keeping the position of the first occurrence.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: DictType}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = DictType
	res.Keys = make([]string, 0, len(kvs))
	res.Values = make([]*Node, 0, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if j := slices.Index(res.Keys, kv.Key); j != -1 {
			res.Values[j] = kv.Val
			continue
		}
		res.Keys = append(res.Keys, kv.Key)
		res.Values = append(res.Values, kv.Val)
	}
	return res
}

// FromMap builds an unordered dict; keys are sorted lexicographically at
// construction and the node is marked Sorted.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: DictType, Sorted: true}
	res.Keys = slices.Sorted(maps.Keys(m))
	res.Values = make([]*Node, len(res.Keys))
	for i, key := range res.Keys {
		res.Values[i] = m[key]
	}
	return res
}

func ToMap(n *Node) map[string]*Node {
	if n.Type != DictType {
		return nil
	}
	res := make(map[string]*Node, len(n.Keys))
	for i, key := range n.Keys {
		res[key] = n.Values[i]
	}
	return res
}

func Get(n *Node, key string) *Node {
	if n.Type != DictType {
		return nil
	}
	for i, k := range n.Keys {
		if k == key {
			return n.Values[i]
		}
	}
	return nil
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
