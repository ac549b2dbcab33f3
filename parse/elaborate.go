package parse

import (
	"github.com/edn-format/go-edn/debug"
	"github.com/edn-format/go-edn/ir"
	"github.com/edn-format/go-edn/token"
)

// Elaborate converts a concrete node into the value model. Duplicate
// map keys and set members are rejected; the error position is the end
// of the span of the second occurrence (for a map, the end of the
// repeated entry's value).
func Elaborate(n *Node) (*ir.Value, error) {
	v, err := elaborate(n)
	if err != nil {
		return nil, err
	}
	if debug.Elaborate() {
		debug.Logf("elaborate: %v\n", v)
	}
	return v, nil
}

func elaborate(n *Node) (*ir.Value, *token.Error) {
	switch n.Type {
	case ir.VectorType, ir.ListType:
		vs := make([]*ir.Value, len(n.Values))
		for i, c := range n.Values {
			v, err := elaborate(c)
			if err != nil {
				return nil, err
			}
			vs[i] = v
		}
		return ir.FromSlice(n.Type, vs), nil
	case ir.SetType:
		set := ir.NewSet()
		for _, c := range n.Values {
			m, err := elaborate(c)
			if err != nil {
				return nil, err
			}
			if !set.Add(m) {
				return nil, token.NewError(token.CodeSetDuplicateKey, c.Span.End)
			}
		}
		return set, nil
	case ir.MapType:
		m := ir.NewMap()
		for i, kn := range n.Fields {
			k, err := elaborate(kn)
			if err != nil {
				return nil, err
			}
			v, err := elaborate(n.Values[i])
			if err != nil {
				return nil, err
			}
			if !m.Put(k, v) {
				return nil, token.NewError(token.CodeHashMapDuplicateKey, n.Values[i].Span.End)
			}
		}
		return m, nil
	case ir.TaggedType:
		inner, err := elaborate(n.Values[0])
		if err != nil {
			return nil, err
		}
		return ir.FromTagged(n.Str, inner), nil
	case ir.KeyType:
		return ir.FromKeyword(n.Str), nil
	case ir.SymbolType:
		return ir.FromSymbol(n.Str), nil
	case ir.StrType:
		return ir.FromString(n.Str), nil
	case ir.IntType:
		return ir.FromInt(n.Int), nil
	case ir.DoubleType:
		return ir.FromFloat(n.Float), nil
	case ir.RationalType:
		return ir.FromRational(n.Num, n.Den), nil
	case ir.BigIntType:
		return ir.FromBigInt(n.BigInt), nil
	case ir.BigDecType:
		return ir.FromBigDec(n.Dec), nil
	case ir.CharType:
		return ir.FromChar(n.Char), nil
	case ir.BoolType:
		return ir.FromBool(n.Bool), nil
	default:
		return ir.Null(), nil
	}
}
