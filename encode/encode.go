package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/edn-format/go-edn/ir"
)

type EncState struct {
	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes v as EDN text. The output is a single line; set
// members and map entries appear in sorted order, so equal values
// always render to equal text.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(v, w, es)
}

func encode(v *ir.Value, w io.Writer, es *EncState) error {
	if s, ok := leafText(v); ok {
		return writeColored(w, es, v.Type, ValueColor, s)
	}
	switch v.Type {
	case ir.VectorType:
		return encodeSeq(v, w, es, "[", "]")
	case ir.ListType:
		return encodeSeq(v, w, es, "(", ")")
	case ir.SetType:
		return encodeSeq(v, w, es, "#{", "}")
	case ir.MapType:
		return encodeMap(v, w, es)
	case ir.TaggedType:
		if err := writeColored(w, es, v.Type, TagColor, "#"+v.Str); err != nil {
			return err
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		return encode(v.Values[0], w, es)
	}
	return fmt.Errorf("encode: unknown type %v", v.Type)
}

// leafText renders a non-collection value, reporting false for
// collections and tagged values.
func leafText(v *ir.Value) (string, bool) {
	switch v.Type {
	case ir.NilType:
		return "nil", true
	case ir.BoolType:
		return strconv.FormatBool(v.Bool), true
	case ir.IntType:
		return strconv.FormatInt(v.Int, 10), true
	case ir.DoubleType:
		return formatDouble(v.Float), true
	case ir.RationalType:
		return strconv.FormatInt(v.Num, 10) + "/" + strconv.FormatInt(v.Den, 10), true
	case ir.BigIntType:
		return v.BigInt.String() + "N", true
	case ir.BigDecType:
		return v.Dec + "M", true
	case ir.CharType:
		return formatChar(v.Char), true
	case ir.StrType:
		return `"` + v.Str + `"`, true
	case ir.KeyType:
		return ":" + v.Str, true
	case ir.SymbolType:
		return v.Str, true
	}
	return "", false
}

func encodeSeq(v *ir.Value, w io.Writer, es *EncState, open, closer string) error {
	if err := writeColored(w, es, v.Type, SepColor, open); err != nil {
		return err
	}
	for i, e := range v.Values {
		if i > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encode(e, w, es); err != nil {
			return err
		}
	}
	return writeColored(w, es, v.Type, SepColor, closer)
}

func encodeMap(v *ir.Value, w io.Writer, es *EncState) error {
	if err := writeColored(w, es, v.Type, SepColor, "{"); err != nil {
		return err
	}
	for i, k := range v.Fields {
		if i > 0 {
			if err := writeColored(w, es, v.Type, SepColor, ", "); err != nil {
				return err
			}
		}
		if err := encodeField(k, w, es); err != nil {
			return err
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := encode(v.Values[i], w, es); err != nil {
			return err
		}
	}
	return writeColored(w, es, v.Type, SepColor, "}")
}

func encodeField(k *ir.Value, w io.Writer, es *EncState) error {
	if s, ok := leafText(k); ok {
		return writeColored(w, es, k.Type, FieldColor, s)
	}
	return encode(k, w, es)
}

// formatDouble keeps a trailing ".0" on integral doubles so the text
// reads back as a double rather than an int. Non-finite values use
// the ##Inf, ##-Inf and ##NaN symbolic forms.
func formatDouble(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "##Inf"
	case math.IsInf(f, -1):
		return "##-Inf"
	case math.IsNaN(f):
		return "##NaN"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func formatChar(c rune) string {
	switch c {
	case '\n':
		return `\newline`
	case '\r':
		return `\return`
	case '\t':
		return `\tab`
	case ' ':
		return `\space`
	}
	return `\` + string(c)
}

func writeColored(w io.Writer, es *EncState, t ir.Type, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
