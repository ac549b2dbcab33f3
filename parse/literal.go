package parse

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/edn-format/go-edn/ir"
	"github.com/edn-format/go-edn/token"
)

// classifyLiteral turns a bare token into a scalar node. A token that
// looks numeric but matches no numeric form is a hard error, never a
// symbol.
func classifyLiteral(lit string, span Span, o *parseOpts) (*Node, *token.Error) {
	switch lit {
	case "nil":
		return &Node{Type: ir.NilType, Span: span}, nil
	case "true", "false":
		return &Node{Type: ir.BoolType, Span: span, Bool: lit == "true"}, nil
	}
	if lit[0] == ':' {
		if len(lit) <= 1 {
			return nil, token.NewError(token.CodeInvalidKeyword, span.Start)
		}
		return &Node{Type: ir.KeyType, Span: span, Str: lit[1:]}, nil
	}
	if looksNumeric(lit) {
		return parseNumber(lit, span, o)
	}
	return &Node{Type: ir.SymbolType, Span: span, Str: lit}, nil
}

// looksNumeric reports whether the token starts with a digit, or a
// sign immediately followed by a digit. `-foobar` stays a symbol.
func looksNumeric(lit string) bool {
	first, sz := utf8.DecodeRuneInString(lit)
	if unicode.IsNumber(first) {
		return true
	}
	if first != '+' && first != '-' {
		return false
	}
	second, _ := utf8.DecodeRuneInString(lit[sz:])
	return unicode.IsNumber(second)
}

// parseNumber classifies a numeric-looking token. Attempt order:
// 64-bit integer in the detected radix, rational, arbitrary-precision
// integer, float, arbitrary-precision decimal.
func parseNumber(lit string, span Span, o *parseOpts) (*Node, *token.Error) {
	neg := false
	num := lit
	switch lit[0] {
	case '+':
		// a redundant leading + is allowed and ignored
		num = lit[1:]
	case '-':
		neg = true
		num = lit[1:]
	}

	radix := 10
	if len(num) > 2 && (strings.HasPrefix(num, "0x") || strings.HasPrefix(num, "0X")) {
		num = num[2:]
		radix = 16
	} else if i := strings.IndexAny(num, "rR"); i >= 0 {
		r, err := strconv.ParseUint(num[:i], 10, 8)
		if err != nil {
			return nil, token.InvalidRadixErr(-1, span.Start)
		}
		if r < 2 || r > 36 {
			return nil, token.InvalidRadixErr(int(r), span.Start)
		}
		num = num[i+1:]
		radix = int(r)
	}

	if v, err := strconv.ParseInt(num, radix, 64); err == nil {
		if neg {
			v = -v
		}
		return &Node{Type: ir.IntType, Span: span, Int: v}, nil
	}

	if radix == 10 {
		if n, d, ok := rationalParts(lit); ok {
			return &Node{Type: ir.RationalType, Span: span, Num: n, Den: d}, nil
		}
	}

	if o.bignums {
		if z, ok := new(big.Int).SetString(strings.TrimSuffix(num, "N"), radix); ok {
			if neg {
				z.Neg(z)
			}
			return &Node{Type: ir.BigIntType, Span: span, BigInt: z}, nil
		}
	}

	// ParseFloat accepts Go-style digit separators; the reader grammar
	// does not.
	if radix == 10 && !strings.ContainsRune(num, '_') {
		isFloat := false
		if f, err := strconv.ParseFloat(num, 64); err == nil || errors.Is(err, strconv.ErrRange) {
			// overflow keeps IEEE semantics (+/-Inf), not an error
			isFloat = true
			if o.floats {
				if neg {
					f = -f
				}
				return &Node{Type: ir.DoubleType, Span: span, Float: f}, nil
			}
		}
		if o.bignums && strings.HasSuffix(num, "M") {
			dec := strings.TrimSuffix(num, "M")
			if neg {
				dec = strings.TrimSuffix(lit, "M")
			}
			if _, _, err := big.ParseFloat(dec, 10, decValidatePrec, big.ToNearestEven); err == nil {
				return &Node{Type: ir.BigDecType, Span: span, Dec: dec}, nil
			}
		}
		if isFloat {
			return nil, token.NewError(token.CodeNoFloat, span.Start)
		}
	}

	return nil, token.NewError(token.CodeInvalidNumber, span.Start)
}

const decValidatePrec = 64

// rationalParts splits n/d with both sides independently signed.
func rationalParts(lit string) (num, den int64, ok bool) {
	i := strings.IndexByte(lit, '/')
	if i < 0 {
		return 0, 0, false
	}
	num, err := strconv.ParseInt(lit[:i], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	den, err = strconv.ParseInt(lit[i+1:], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return num, den, true
}

// parseChar classifies a backslash-prefixed literal: a named control
// character or exactly one rune.
func parseChar(lit string, span Span) (*Node, *token.Error) {
	c := lit[1:] // leading backslash
	switch c {
	case "newline":
		return &Node{Type: ir.CharType, Span: span, Char: '\n'}, nil
	case "return":
		return &Node{Type: ir.CharType, Span: span, Char: '\r'}, nil
	case "tab":
		return &Node{Type: ir.CharType, Span: span, Char: '\t'}, nil
	case "space":
		return &Node{Type: ir.CharType, Span: span, Char: ' '}, nil
	}
	if utf8.RuneCountInString(c) != 1 {
		return nil, token.NewError(token.CodeInvalidChar, span.Start)
	}
	r, _ := utf8.DecodeRuneInString(c)
	return &Node{Type: ir.CharType, Span: span, Char: r}, nil
}
