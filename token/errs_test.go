package token

import (
	"errors"
	"io"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	pos := Pos{Line: 2, Col: 9, Off: 17}
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			"with position",
			NewError(CodeUnexpectedEOF, pos),
			"unexpected EOF at line 2, col 9 (offset 17)",
		},
		{
			"without position",
			&Error{Code: CodeUnexpectedEOF},
			"unexpected EOF",
		},
		{
			"unmatched delimiter",
			UnmatchedDelimiterErr('}', Pos{Line: 1, Col: 2, Off: 1}),
			"unmatched delimiter '}' at line 1, col 2 (offset 1)",
		},
		{
			"radix out of range",
			InvalidRadixErr(42, Pos{Line: 1, Col: 1, Off: 0}),
			"invalid radix 42 at line 1, col 1 (offset 0)",
		},
		{
			"radix unparsable",
			InvalidRadixErr(-1, Pos{Line: 1, Col: 1, Off: 0}),
			"invalid radix at line 1, col 1 (offset 0)",
		},
		{
			"duplicate key",
			NewError(CodeHashMapDuplicateKey, pos),
			"duplicate map key at line 2, col 9 (offset 17)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorSentinels(t *testing.T) {
	pos := Pos{Line: 1, Col: 1, Off: 0}
	tests := []struct {
		code Code
		want error
	}{
		{CodeUnexpectedEOF, ErrUnexpectedEOF},
		{CodeUnmatchedDelimiter, ErrUnmatchedDelimiter},
		{CodeInvalidChar, ErrInvalidChar},
		{CodeInvalidEscape, ErrInvalidEscape},
		{CodeInvalidKeyword, ErrInvalidKeyword},
		{CodeInvalidNumber, ErrInvalidNumber},
		{CodeInvalidRadix, ErrInvalidRadix},
		{CodeHashMapDuplicateKey, ErrDuplicateKey},
		{CodeSetDuplicateKey, ErrDuplicateMember},
		{CodeNoFloat, ErrNoFloat},
	}
	for _, tt := range tests {
		err := NewError(tt.code, pos)
		if !errors.Is(err, tt.want) {
			t.Errorf("code %v does not unwrap to %v", tt.code, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(io.ErrUnexpectedEOF)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatal("Wrap lost the inner error")
	}
	if err.Code != CodeWrapped {
		t.Fatalf("Code = %v, want CodeWrapped", err.Code)
	}
	if err.Error() != io.ErrUnexpectedEOF.Error() {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestCodeString(t *testing.T) {
	if got := CodeSetDuplicateKey.String(); got != "SetDuplicateKey" {
		t.Errorf("String() = %q", got)
	}
	if got := Code(999).String(); got != "<unknown code>" {
		t.Errorf("String() = %q", got)
	}
}
