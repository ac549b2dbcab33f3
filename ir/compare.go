package ir

import (
	"cmp"
	"math"
	"math/big"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// All variants participate in one total order, ranked by Type first;
// the same order drives canonical map/set layout and Equal.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	if c := cmp.Compare(rank(a.Type), rank(b.Type)); c != 0 {
		return c
	}

	switch a.Type {
	case VectorType, ListType:
		return compareSlices(a.Values, b.Values)
	case SetType:
		return compareSlices(a.Values, b.Values)
	case MapType:
		return compareMaps(a, b)
	case KeyType, SymbolType, StrType:
		return strings.Compare(a.Str, b.Str)
	case IntType:
		return cmp.Compare(a.Int, b.Int)
	case TaggedType:
		if c := strings.Compare(a.Str, b.Str); c != 0 {
			return c
		}
		return Compare(a.Values[0], b.Values[0])
	case DoubleType:
		return compareFloats(a.Float, b.Float)
	case RationalType:
		// rationals order as (numerator, denominator) pairs,
		// not by numeric value
		if c := cmp.Compare(a.Num, b.Num); c != 0 {
			return c
		}
		return cmp.Compare(a.Den, b.Den)
	case BigIntType:
		return a.BigInt.Cmp(b.BigInt)
	case BigDecType:
		return compareDecs(a.Dec, b.Dec)
	case CharType:
		return cmp.Compare(a.Char, b.Char)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NilType:
		return 0
	}
	return 0
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type, which is its declaration
// order.
func rank(t Type) int {
	return int(t)
}

func compareSlices(a, b []*Value) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareMaps(a, b *Value) int {
	n := min(len(a.Fields), len(b.Fields))
	for i := 0; i < n; i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Fields), len(b.Fields))
}

// compareFloats is IEEE 754 total order, so NaN and negative zero
// compare deterministically: -NaN < -Inf < -0 < +0 < +Inf < +NaN.
func compareFloats(a, b float64) int {
	l := int64(math.Float64bits(a))
	r := int64(math.Float64bits(b))
	l ^= int64(uint64(l>>63) >> 1)
	r ^= int64(uint64(r>>63) >> 1)
	return cmp.Compare(l, r)
}

const decCmpPrec = 256

// compareDecs orders big decimals numerically at fixed precision with
// a lexicographic tiebreak, so distinct literals of the same magnitude
// ("1.5" vs "1.50") stay distinguishable and hashing stays consistent
// with Compare. Note this is stricter than numeric equality: a set
// may hold both 1.5M and 1.50M.
func compareDecs(a, b string) int {
	if a == b {
		return 0
	}
	af, _, errA := big.ParseFloat(a, 10, decCmpPrec, big.ToNearestEven)
	bf, _, errB := big.ParseFloat(b, 10, decCmpPrec, big.ToNearestEven)
	if errA == nil && errB == nil {
		if c := af.Cmp(bf); c != 0 {
			return c
		}
	}
	return strings.Compare(a, b)
}
