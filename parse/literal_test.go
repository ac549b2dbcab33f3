package parse

import (
	"math"
	"math/big"
	"testing"

	"github.com/edn-format/go-edn/ir"
	"github.com/edn-format/go-edn/token"
)

func classify(t *testing.T, lit string, opts ...Option) *Node {
	t.Helper()
	n, err := classifyLiteral(lit, Span{}, newParseOpts(opts))
	if err != nil {
		t.Fatalf("classifyLiteral(%q) error: %v", lit, err)
	}
	return n
}

func classifyErr(t *testing.T, lit string, opts ...Option) *token.Error {
	t.Helper()
	n, err := classifyLiteral(lit, Span{}, newParseOpts(opts))
	if err == nil {
		t.Fatalf("classifyLiteral(%q) = %v, want error", lit, n)
	}
	return err
}

func TestClassifyConstants(t *testing.T) {
	if n := classify(t, "nil"); n.Type != ir.NilType {
		t.Errorf("nil -> %v", n.Type)
	}
	if n := classify(t, "true"); n.Type != ir.BoolType || !n.Bool {
		t.Errorf("true -> %v %v", n.Type, n.Bool)
	}
	if n := classify(t, "false"); n.Type != ir.BoolType || n.Bool {
		t.Errorf("false -> %v %v", n.Type, n.Bool)
	}
}

func TestClassifyKeywordsAndSymbols(t *testing.T) {
	if n := classify(t, ":cat"); n.Type != ir.KeyType || n.Str != "cat" {
		t.Errorf(":cat -> %v %q", n.Type, n.Str)
	}
	if n := classify(t, ":ns/k"); n.Type != ir.KeyType || n.Str != "ns/k" {
		t.Errorf(":ns/k -> %v %q", n.Type, n.Str)
	}
	if err := classifyErr(t, ":"); err.Code != token.CodeInvalidKeyword {
		t.Errorf("bare colon -> %v", err.Code)
	}
	for _, lit := range []string{"cat", "-foo", "+foo+bar+", "+", "-", "a/b", "nilish", ".5"} {
		if n := classify(t, lit); n.Type != ir.SymbolType || n.Str != lit {
			t.Errorf("%q -> %v %q, want symbol", lit, n.Type, n.Str)
		}
	}
}

func TestClassifyInts(t *testing.T) {
	tests := []struct {
		lit  string
		want int64
	}{
		{"42", 42},
		{"-42", -42},
		{"+42", 42},
		{"0", 0},
		{"0x2a", 42},
		{"0X2A", 42},
		{"-0x2a", -42},
		{"2r101", 5},
		{"8r777", 511},
		{"36rz", 35},
		{"16rffff", 65535},
	}
	for _, tt := range tests {
		n := classify(t, tt.lit)
		if n.Type != ir.IntType || n.Int != tt.want {
			t.Errorf("%q -> %v %d, want Int %d", tt.lit, n.Type, n.Int, tt.want)
		}
	}
}

func TestClassifyRadixErrors(t *testing.T) {
	err := classifyErr(t, "42rabcxzy")
	if err.Code != token.CodeInvalidRadix || err.Radix != 42 {
		t.Errorf("42rabcxzy -> %v radix %d", err.Code, err.Radix)
	}
	err = classifyErr(t, "42crazyrabcxzy")
	if err.Code != token.CodeInvalidRadix || err.Radix != -1 {
		t.Errorf("42crazyrabcxzy -> %v radix %d", err.Code, err.Radix)
	}
	err = classifyErr(t, "1r0")
	if err.Code != token.CodeInvalidRadix || err.Radix != 1 {
		t.Errorf("1r0 -> %v radix %d", err.Code, err.Radix)
	}
}

func TestClassifyRationals(t *testing.T) {
	n := classify(t, "43/5")
	if n.Type != ir.RationalType || n.Num != 43 || n.Den != 5 {
		t.Errorf("43/5 -> %v %d/%d", n.Type, n.Num, n.Den)
	}
	n = classify(t, "-4/5")
	if n.Type != ir.RationalType || n.Num != -4 || n.Den != 5 {
		t.Errorf("-4/5 -> %v %d/%d", n.Type, n.Num, n.Den)
	}
}

func TestClassifyDoubles(t *testing.T) {
	tests := []struct {
		lit  string
		want float64
	}{
		{"3.5", 3.5},
		{"-3.5", -3.5},
		{"1e3", 1000},
		{"1.2e-3", 0.0012},
	}
	for _, tt := range tests {
		n := classify(t, tt.lit)
		if n.Type != ir.DoubleType || n.Float != tt.want {
			t.Errorf("%q -> %v %v, want Double %v", tt.lit, n.Type, n.Float, tt.want)
		}
	}
	// out-of-range magnitudes saturate to infinity
	if n := classify(t, "1e400"); !math.IsInf(n.Float, 1) {
		t.Errorf("1e400 -> %v", n.Float)
	}
	if n := classify(t, "-1e400"); !math.IsInf(n.Float, -1) {
		t.Errorf("-1e400 -> %v", n.Float)
	}
}

func TestClassifyBigNums(t *testing.T) {
	n := classify(t, "123N")
	if n.Type != ir.BigIntType || n.BigInt.Cmp(big.NewInt(123)) != 0 {
		t.Errorf("123N -> %v %v", n.Type, n.BigInt)
	}
	// ints past the 64-bit range promote without the suffix
	over := "9223372036854775808"
	n = classify(t, over)
	want, _ := new(big.Int).SetString(over, 10)
	if n.Type != ir.BigIntType || n.BigInt.Cmp(want) != 0 {
		t.Errorf("%s -> %v %v", over, n.Type, n.BigInt)
	}
	n = classify(t, "10.5M")
	if n.Type != ir.BigDecType || n.Dec != "10.5" {
		t.Errorf("10.5M -> %v %q", n.Type, n.Dec)
	}
	n = classify(t, "-10.5M")
	if n.Type != ir.BigDecType || n.Dec != "-10.5" {
		t.Errorf("-10.5M -> %v %q", n.Type, n.Dec)
	}
}

func TestClassifyCapabilities(t *testing.T) {
	if err := classifyErr(t, "3.5", Floats(false)); err.Code != token.CodeNoFloat {
		t.Errorf("3.5 without floats -> %v", err.Code)
	}
	if err := classifyErr(t, "1e3", Floats(false)); err.Code != token.CodeNoFloat {
		t.Errorf("1e3 without floats -> %v", err.Code)
	}
	if err := classifyErr(t, "123N", BigNums(false)); err.Code != token.CodeInvalidNumber {
		t.Errorf("123N without bignums -> %v", err.Code)
	}
	if err := classifyErr(t, "10.5M", BigNums(false)); err.Code != token.CodeInvalidNumber {
		t.Errorf("10.5M without bignums -> %v", err.Code)
	}
	// decimals still work with floats off
	if n := classify(t, "10.5M", Floats(false)); n.Type != ir.BigDecType {
		t.Errorf("10.5M without floats -> %v", n.Type)
	}
	// ints are unaffected
	if n := classify(t, "42", Floats(false), BigNums(false)); n.Type != ir.IntType {
		t.Errorf("42 restricted -> %v", n.Type)
	}
}

func TestClassifyInvalidNumbers(t *testing.T) {
	// a numeric-looking token never degrades to a symbol
	for _, lit := range []string{"12_3", "1..2", "42invalid123", "0xxyz123"} {
		if err := classifyErr(t, lit); err.Code != token.CodeInvalidNumber {
			t.Errorf("%q -> %v", lit, err.Code)
		}
	}
}

func TestParseChar(t *testing.T) {
	tests := []struct {
		lit  string
		want rune
	}{
		{`\c`, 'c'},
		{`\newline`, '\n'},
		{`\return`, '\r'},
		{`\tab`, '\t'},
		{`\space`, ' '},
		{`\é`, 'é'},
		{`\n`, 'n'},
	}
	for _, tt := range tests {
		n, err := parseChar(tt.lit, Span{})
		if err != nil {
			t.Errorf("parseChar(%q) error: %v", tt.lit, err)
			continue
		}
		if n.Type != ir.CharType || n.Char != tt.want {
			t.Errorf("parseChar(%q) = %v %q, want %q", tt.lit, n.Type, n.Char, tt.want)
		}
	}
	for _, lit := range []string{`\ab`, `\`} {
		if _, err := parseChar(lit, Span{}); err == nil || err.Code != token.CodeInvalidChar {
			t.Errorf("parseChar(%q): want CodeInvalidChar", lit)
		}
	}
}
