package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is shared so equal values hash equal for the lifetime of
// the process.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the value, consistent with Equal.
// It panics if v is nil.
func (v *Value) Hash() uint64 {
	if v == nil {
		panic("ir: Hash called on nil value")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	var b [8]byte

	h.WriteByte(byte(v.Type))
	switch v.Type {
	case NilType:
	case BoolType:
		if v.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		binary.LittleEndian.PutUint64(b[:], uint64(v.Int))
		h.Write(b[:])
	case DoubleType:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.Float))
		h.Write(b[:])
	case RationalType:
		binary.LittleEndian.PutUint64(b[:], uint64(v.Num))
		h.Write(b[:])
		binary.LittleEndian.PutUint64(b[:], uint64(v.Den))
		h.Write(b[:])
	case BigIntType:
		h.Write(v.BigInt.Bytes())
		if v.BigInt.Sign() < 0 {
			h.WriteByte(1)
		}
	case BigDecType:
		h.WriteString(v.Dec)
	case CharType:
		binary.LittleEndian.PutUint64(b[:], uint64(v.Char))
		h.Write(b[:])
	case KeyType, SymbolType, StrType:
		h.WriteString(v.Str)
	case TaggedType:
		h.WriteString(v.Str)
		binary.LittleEndian.PutUint64(b[:], v.Values[0].Hash())
		h.Write(b[:])
	case VectorType, ListType, SetType:
		for _, m := range v.Values {
			binary.LittleEndian.PutUint64(b[:], m.Hash())
			h.Write(b[:])
		}
	case MapType:
		for i, f := range v.Fields {
			binary.LittleEndian.PutUint64(b[:], f.Hash())
			h.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], v.Values[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
