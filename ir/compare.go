package ir

import (
	"bytes"
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Arrays compare element-wise in order; dicts compare key/value pairs in
// their stored order, so two ordered dicts with the same entries in a
// different order are unequal.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType:
		return cmp.Compare(a.Int, b.Int)
	case RealType:
		return cmp.Compare(a.Real, b.Real)
	case StringType:
		return strings.Compare(a.String, b.String)
	case DataType:
		return bytes.Compare(a.Data, b.Data)
	case DateType:
		return compareDates(a, b)
	case ArrayType:
		return compareArrays(a, b)
	case DictType:
		return compareDicts(a, b)
	}
	return 0
}

// Equal reports deep structural equality.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Int < Real < String < Data < Date < Array < Dict
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType:
		return 2
	case RealType:
		return 3
	case StringType:
		return 4
	case DataType:
		return 5
	case DateType:
		return 6
	case ArrayType:
		return 7
	case DictType:
		return 8
	}
	return 100
}

func compareDates(a, b *Node) int {
	if a.Time.Equal(b.Time) {
		// same instant, distinguish stored offsets
		_, offA := a.Time.Zone()
		_, offB := b.Time.Zone()
		return cmp.Compare(offA, offB)
	}
	if a.Time.Before(b.Time) {
		return -1
	}
	return 1
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareDicts(a, b *Node) int {
	lenA := len(a.Keys)
	lenB := len(b.Keys)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Keys[i], b.Keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
