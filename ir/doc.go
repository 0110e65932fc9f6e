// Package ir provides the in-memory representation of property list data.
//
// # Overview
//
// Every datum a property list document can express is represented as an
// ir.Node tree. The IR is a closed tagged union: a Node carries a Type and
// the payload field for that type, and nothing else. Documents decoded by
// the parse package and documents handed to the encode package are both
// ir.Node trees, so the IR is the single boundary type of the codec.
//
// # Node Types
//
//   - NullType: no payload
//   - BoolType: boolean
//   - IntType: 64-bit signed integer
//   - RealType: IEEE-754 double
//   - StringType: UTF-8 text
//   - DataType: owned byte sequence
//   - DateType: timestamp with an explicit UTC offset
//   - ArrayType: ordered list of nodes
//   - DictType: ordered string-keyed mapping
//
// # Dicts
//
// For DictType nodes, Keys[i] is the key for the value at Values[i], so
// there are always as many keys as values, and keys are unique within one
// dict. A dict built with FromKeyVals preserves its construction order on
// output; a dict built with FromMap is marked Sorted and its keys are kept
// in lexicographic order. The flag is set at construction and is the only
// thing that distinguishes the two kinds.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	bin := ir.FromData([]byte{0x3c, 0x42})
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// FromAny converts plain Go values (bool, integers, float64, string,
// []byte, time.Time, []any, map[string]any) into nodes; ToAny is its
// inverse and is what the conversion and query tooling operates on.
//
// A Node tree is built wholesale by a constructor or by one of the codec
// directions and is not mutated afterwards. Nothing in this module shares
// mutable state, so independent concurrent use is safe.
//
// # Related Packages
//
//   - github.com/flying-sheep/plist/parse - decodes documents into nodes
//   - github.com/flying-sheep/plist/encode - encodes nodes into documents
package ir
