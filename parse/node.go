package parse

import (
	"math/big"

	"github.com/edn-format/go-edn/ir"
	"github.com/edn-format/go-edn/token"
)

// Span is a half-open source range: Start is the first rune of the
// form, End is one past its last rune.
type Span struct {
	Start, End token.Pos
}

// Node is a concrete parse node: the same tagged-union shape as
// ir.Value plus source spans and discard trivia, for tooling that
// needs exact source structure. Elaborate resolves a Node tree into
// the abstract value model.
//
// Discards holds the forms discarded (#_) immediately before this
// node; Trailing, on collections, holds forms discarded before the
// closing delimiter. Discarded nodes nest their own trivia.
type Node struct {
	Type ir.Type
	Span Span

	Discards []*Node
	Trailing []*Node

	// Implicit marks the Nil produced by empty or fully-discarded
	// input, which Read treats differently from a literal nil.
	Implicit bool

	Str      string
	Int      int64
	Float    float64
	Num, Den int64
	BigInt   *big.Int
	Dec      string
	Char     rune
	Bool     bool

	Fields []*Node
	Values []*Node
}
