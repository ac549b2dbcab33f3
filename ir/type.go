package ir

import "fmt"

// Type discriminates Value variants. The declaration order is the
// sorting rank used by Compare, so map keys and set members sort
// vectors first and nil last.
type Type int

const (
	VectorType Type = iota
	SetType
	MapType
	ListType
	KeyType
	SymbolType
	StrType
	IntType
	TaggedType
	DoubleType
	RationalType
	BigIntType
	BigDecType
	CharType
	BoolType
	NilType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		VectorType:   "Vector",
		SetType:      "Set",
		MapType:      "Map",
		ListType:     "List",
		KeyType:      "Key",
		SymbolType:   "Symbol",
		StrType:      "Str",
		IntType:      "Int",
		TaggedType:   "Tagged",
		DoubleType:   "Double",
		RationalType: "Rational",
		BigIntType:   "BigInt",
		BigDecType:   "BigDec",
		CharType:     "Char",
		BoolType:     "Bool",
		NilType:      "Nil",
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
	for _, tt := range Types() {
		if tt.String() == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		VectorType,
		SetType,
		MapType,
		ListType,
		KeyType,
		SymbolType,
		StrType,
		IntType,
		TaggedType,
		DoubleType,
		RationalType,
		BigIntType,
		BigDecType,
		CharType,
		BoolType,
		NilType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case VectorType, SetType, MapType, ListType, TaggedType:
		return false
	default:
		return true
	}
}
