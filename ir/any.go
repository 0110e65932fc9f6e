package ir

import (
	"fmt"
	"time"
)

// FromAny converts a plain Go value into a node. Maps become Sorted
// dicts, slices become arrays, and *Node values pass through by clone.
// Values outside the supported representations yield ErrUnsupportedValue
// naming the value and its Go type.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return t.Clone(), nil
	case []*Node:
		return FromSlice(t), nil
	case map[string]*Node:
		return FromMap(t), nil
	case bool:
		return FromBool(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int8:
		return FromInt(int64(t)), nil
	case int16:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint:
		return FromInt(int64(t)), nil
	case uint8:
		return FromInt(int64(t)), nil
	case uint16:
		return FromInt(int64(t)), nil
	case uint32:
		return FromInt(int64(t)), nil
	case uint64:
		return FromInt(int64(t)), nil
	case float32:
		return FromReal(float64(t)), nil
	case float64:
		return FromReal(t), nil
	case string:
		return FromString(t), nil
	case []byte:
		return FromData(t), nil
	case time.Time:
		return FromDate(t), nil
	case []KeyVal:
		kvs := make([]KeyVal, len(t))
		for i, kv := range t {
			kvs[i] = kv
		}
		return FromKeyVals(kvs), nil
	case []any:
		vs := make([]*Node, len(t))
		for i, elt := range t {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case map[string]any:
		m := make(map[string]*Node, len(t))
		for k, elt := range t {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: cannot handle %v of type %T", ErrUnsupportedValue, v, v)
	}
}

// ToAny converts a node into plain Go values: maps, slices, and leaf
// scalars. Dict key order is not representable in a Go map, so ToAny is
// for interop (conversion, queries, patching), not for re-encoding
// ordered documents.
func ToAny(n *Node) any {
	switch n.Type {
	case NullType:
		return nil
	case BoolType:
		return n.Bool
	case IntType:
		return n.Int
	case RealType:
		return n.Real
	case StringType:
		return n.String
	case DataType:
		return n.Data
	case DateType:
		return n.Time
	case ArrayType:
		res := make([]any, len(n.Values))
		for i, elt := range n.Values {
			res[i] = ToAny(elt)
		}
		return res
	case DictType:
		res := make(map[string]any, len(n.Keys))
		for i, key := range n.Keys {
			res[key] = ToAny(n.Values[i])
		}
		return res
	default:
		panic("type")
	}
}
