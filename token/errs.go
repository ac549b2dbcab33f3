package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF      = errors.New("unexpected EOF")
	ErrUnmatchedDelimiter = errors.New("unmatched delimiter")
	ErrInvalidChar        = errors.New("invalid character literal")
	ErrInvalidEscape      = errors.New("invalid escape")
	ErrInvalidKeyword     = errors.New("invalid keyword")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrInvalidRadix       = errors.New("invalid radix")
	ErrDuplicateKey       = errors.New("duplicate map key")
	ErrDuplicateMember    = errors.New("duplicate set member")
	ErrNoFloat            = errors.New("float literals unsupported")
)

// Code identifies an error condition. The set of codes is open:
// consumers must keep a default arm when switching on it, as wrappers
// around this module (e.g. a struct bridge) add their own.
type Code int

const (
	CodeUnknown Code = iota
	CodeUnexpectedEOF
	CodeUnmatchedDelimiter
	CodeInvalidChar
	CodeInvalidEscape
	CodeInvalidKeyword
	CodeInvalidNumber
	CodeInvalidRadix
	CodeHashMapDuplicateKey
	CodeSetDuplicateKey
	CodeNoFloat
	CodeWrapped
)

func (c Code) String() string {
	s, ok := map[Code]string{
		CodeUnexpectedEOF:       "UnexpectedEOF",
		CodeUnmatchedDelimiter:  "UnmatchedDelimiter",
		CodeInvalidChar:         "InvalidChar",
		CodeInvalidEscape:       "InvalidEscape",
		CodeInvalidKeyword:      "InvalidKeyword",
		CodeInvalidNumber:       "InvalidNumber",
		CodeInvalidRadix:        "InvalidRadix",
		CodeHashMapDuplicateKey: "HashMapDuplicateKey",
		CodeSetDuplicateKey:     "SetDuplicateKey",
		CodeNoFloat:             "NoFloat",
		CodeWrapped:             "Wrapped",
	}[c]
	if ok {
		return s
	}
	return "<unknown code>"
}

// Error is the error type produced by scanning, parsing and
// elaboration. Pos is nil when no source position applies.
type Error struct {
	Code Code
	Pos  *Pos

	// Delim is the offending rune for CodeUnmatchedDelimiter.
	Delim rune
	// Radix is the out-of-range radix for CodeInvalidRadix, or -1
	// when the radix digits themselves did not parse.
	Radix int
	// Err is the wrapped error for CodeWrapped.
	Err error
}

func NewError(code Code, pos Pos) *Error {
	return &Error{Code: code, Pos: &pos}
}

// Wrap packages an arbitrary error as an Error, the extension point
// collaborating packages use to speak this module's error type.
func Wrap(err error) *Error {
	return &Error{Code: CodeWrapped, Err: err}
}

func UnmatchedDelimiterErr(delim rune, pos Pos) *Error {
	return &Error{Code: CodeUnmatchedDelimiter, Pos: &pos, Delim: delim}
}

func InvalidRadixErr(radix int, pos Pos) *Error {
	return &Error{Code: CodeInvalidRadix, Pos: &pos, Radix: radix}
}

func (e *Error) detail() string {
	switch e.Code {
	case CodeUnmatchedDelimiter:
		return fmt.Sprintf("%s %q", ErrUnmatchedDelimiter.Error(), e.Delim)
	case CodeInvalidRadix:
		if e.Radix >= 0 {
			return fmt.Sprintf("%s %d", ErrInvalidRadix.Error(), e.Radix)
		}
		return ErrInvalidRadix.Error()
	case CodeWrapped:
		return e.Err.Error()
	}
	if s := e.Unwrap(); s != nil {
		return s.Error()
	}
	return "unknown error"
}

func (e *Error) Error() string {
	if e.Pos == nil {
		return e.detail()
	}
	return fmt.Sprintf("%s at %s", e.detail(), e.Pos)
}

func (e *Error) Unwrap() error {
	switch e.Code {
	case CodeUnexpectedEOF:
		return ErrUnexpectedEOF
	case CodeUnmatchedDelimiter:
		return ErrUnmatchedDelimiter
	case CodeInvalidChar:
		return ErrInvalidChar
	case CodeInvalidEscape:
		return ErrInvalidEscape
	case CodeInvalidKeyword:
		return ErrInvalidKeyword
	case CodeInvalidNumber:
		return ErrInvalidNumber
	case CodeInvalidRadix:
		return ErrInvalidRadix
	case CodeHashMapDuplicateKey:
		return ErrDuplicateKey
	case CodeSetDuplicateKey:
		return ErrDuplicateMember
	case CodeNoFloat:
		return ErrNoFloat
	case CodeWrapped:
		return e.Err
	}
	return nil
}
