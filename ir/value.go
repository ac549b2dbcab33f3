package ir

import (
	"math/big"
	"sort"
)

// Value is a resolved EDN value. It works as a recursive tagged union:
// the Type field says which other fields are meaningful.
//
//   - KeyType, SymbolType, StrType: Str (for keys, without the colon)
//   - TaggedType: Str is the tag name, Values[0] the payload
//   - IntType: Int
//   - DoubleType: Float
//   - RationalType: Num, Den
//   - BigIntType: BigInt
//   - BigDecType: Dec, the raw literal digits without the M suffix
//   - CharType: Char
//   - BoolType: Bool
//   - VectorType, ListType: Values, in source order
//   - SetType: Values, sorted by Compare
//   - MapType: Fields (keys, sorted by Compare) and Values in parallel
//
// String-ish fields borrow from the parsed buffer and must not outlive
// it.
type Value struct {
	Type Type

	Str      string
	Int      int64
	Float    float64
	Num, Den int64
	BigInt   *big.Int
	Dec      string
	Char     rune
	Bool     bool

	Fields []*Value
	Values []*Value
}

func Null() *Value {
	return &Value{Type: NilType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Type: IntType, Int: v}
}

func FromFloat(v float64) *Value {
	return &Value{Type: DoubleType, Float: v}
}

func FromString(v string) *Value {
	return &Value{Type: StrType, Str: v}
}

// FromKeyword builds the keyword :name. name carries no leading colon.
func FromKeyword(name string) *Value {
	return &Value{Type: KeyType, Str: name}
}

func FromSymbol(name string) *Value {
	return &Value{Type: SymbolType, Str: name}
}

func FromChar(c rune) *Value {
	return &Value{Type: CharType, Char: c}
}

func FromRational(num, den int64) *Value {
	return &Value{Type: RationalType, Num: num, Den: den}
}

func FromBigInt(v *big.Int) *Value {
	return &Value{Type: BigIntType, BigInt: v}
}

// FromBigDec builds an arbitrary-precision decimal from its literal
// digits (no M suffix).
func FromBigDec(digits string) *Value {
	return &Value{Type: BigDecType, Dec: digits}
}

func FromTagged(tag string, inner *Value) *Value {
	return &Value{Type: TaggedType, Str: tag, Values: []*Value{inner}}
}

// FromSlice builds a Vector or List from vs.
func FromSlice(t Type, vs []*Value) *Value {
	return &Value{Type: t, Values: vs}
}

func NewMap() *Value {
	return &Value{Type: MapType}
}

func NewSet() *Value {
	return &Value{Type: SetType}
}

// search locates key in the sorted slice vs, returning the insertion
// index and whether an equal element is already present.
func search(vs []*Value, key *Value) (int, bool) {
	i := sort.Search(len(vs), func(i int) bool {
		return Compare(vs[i], key) >= 0
	})
	return i, i < len(vs) && Compare(vs[i], key) == 0
}

// Put inserts a key/value pair into a map, keeping keys sorted.
// It reports false, leaving the map unchanged, if the key is already
// present: duplicate keys are an error to the caller, never an
// overwrite.
func (v *Value) Put(key, val *Value) bool {
	i, dup := search(v.Fields, key)
	if dup {
		return false
	}
	v.Fields = append(v.Fields, nil)
	copy(v.Fields[i+1:], v.Fields[i:])
	v.Fields[i] = key
	v.Values = append(v.Values, nil)
	copy(v.Values[i+1:], v.Values[i:])
	v.Values[i] = val
	return true
}

// Add inserts a member into a set, keeping members sorted. It reports
// false if the member is already present.
func (v *Value) Add(m *Value) bool {
	i, dup := search(v.Values, m)
	if dup {
		return false
	}
	v.Values = append(v.Values, nil)
	copy(v.Values[i+1:], v.Values[i:])
	v.Values[i] = m
	return true
}

// Lookup returns the value for key in a map, or nil.
func (v *Value) Lookup(key *Value) *Value {
	i, ok := search(v.Fields, key)
	if !ok {
		return nil
	}
	return v.Values[i]
}

// Has reports whether m is a member of a set.
func (v *Value) Has(m *Value) bool {
	_, ok := search(v.Values, m)
	return ok
}
