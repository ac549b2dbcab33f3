package token

import (
	"unicode"
	"unicode/utf8"
)

// structural delimiters; commas count, double quotes are handled
// separately because an adjacent string starts a new form.
func isDelim(r rune) bool {
	switch r {
	case ',', ']', '}', ')', ';', '(', '[', '{':
		return true
	}
	return false
}

func isBoundary(r rune) bool {
	return unicode.IsSpace(r) || isDelim(r) || r == '"'
}

// Source scans a borrowed text buffer one rune at a time while
// tracking line, column and byte offset. All Slurp* results are
// subslices of the original string; they must not outlive it.
type Source struct {
	d   string
	pos Pos
}

func New(d string) *Source {
	return &Source{d: d, pos: Pos{Line: 1, Col: 1}}
}

func (s *Source) Pos() Pos {
	return s.pos
}

// Rest returns the unconsumed remainder of the buffer.
func (s *Source) Rest() string {
	return s.d[s.pos.Off:]
}

// Peek returns the next rune without consuming it. ok is false at EOF.
func (s *Source) Peek() (r rune, ok bool) {
	if s.pos.Off >= len(s.d) {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(s.d[s.pos.Off:])
	return r, true
}

// Next consumes and returns the next rune. ok is false at EOF.
func (s *Source) Next() (r rune, ok bool) {
	if s.pos.Off >= len(s.d) {
		return 0, false
	}
	r, sz := utf8.DecodeRuneInString(s.d[s.pos.Off:])
	s.pos.advance(r, sz)
	return r, true
}

// SkipInsignificant consumes whitespace and commas, which are
// equivalent separators.
func (s *Source) SkipInsignificant() {
	for {
		r, ok := s.Peek()
		if !ok || (r != ',' && !unicode.IsSpace(r)) {
			return
		}
		s.Next()
	}
}

// SkipToNewline consumes up to, but not including, the next newline.
// Implements ; line comments.
func (s *Source) SkipToNewline() {
	for {
		r, ok := s.Peek()
		if !ok || r == '\n' {
			return
		}
		s.Next()
	}
}

// SlurpLiteral consumes a maximal run of non-boundary runes and
// returns the borrowed slice.
func (s *Source) SlurpLiteral() string {
	start := s.pos.Off
	for {
		r, ok := s.Peek()
		if !ok || isBoundary(r) {
			return s.d[start:s.pos.Off]
		}
		s.Next()
	}
}

// SlurpChar consumes a backslash-prefixed character literal, returning
// the slice including the backslash. The char itself may be a
// delimiter (`\(` is a valid literal), so boundaries only terminate
// the run once at least two runes have been consumed. This keeps
// `\c[lolthisisvalidedn` reading as the char `c`.
func (s *Source) SlurpChar() string {
	start := s.pos.Off
	n := 0
	for {
		r, ok := s.Peek()
		if !ok || (n >= 2 && isBoundary(r)) {
			return s.d[start:s.pos.Off]
		}
		s.Next()
		n++
	}
}

// SlurpString consumes a double-quoted string, starting at the opening
// quote, and returns the raw content between the quotes. Escapes are
// validated against the set {\t \r \n \\ \"} but never expanded.
func (s *Source) SlurpString() (string, *Error) {
	s.Next() // opening quote
	start := s.pos.Off
	escape := false
	for {
		r, ok := s.Next()
		if !ok {
			return "", NewError(CodeUnexpectedEOF, s.pos)
		}
		switch {
		case escape:
			switch r {
			case 't', 'r', 'n', '\\', '"':
			default:
				return "", NewError(CodeInvalidEscape, s.pos)
			}
			escape = false
		case r == '"':
			return s.d[start : s.pos.Off-1], nil
		default:
			escape = r == '\\'
		}
	}
}

// SlurpTag consumes a tag name up to the next boundary.
func (s *Source) SlurpTag() (string, *Error) {
	if _, ok := s.Peek(); !ok {
		return "", NewError(CodeUnexpectedEOF, s.pos)
	}
	return s.SlurpLiteral(), nil
}
