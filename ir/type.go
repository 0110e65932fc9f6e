package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	RealType
	StringType
	DataType
	DateType
	ArrayType
	DictType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		BoolType:   "Bool",
		IntType:    "Int",
		RealType:   "Real",
		StringType: "String",
		DataType:   "Data",
		DateType:   "Date",
		ArrayType:  "Array",
		DictType:   "Dict",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Bool":   BoolType,
		"Int":    IntType,
		"Real":   RealType,
		"String": StringType,
		"Data":   DataType,
		"Date":   DateType,
		"Array":  ArrayType,
		"Dict":   DictType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntType,
		RealType,
		StringType,
		DataType,
		DateType,
		ArrayType,
		DictType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, DictType:
		return false
	default:
		return true
	}
}
