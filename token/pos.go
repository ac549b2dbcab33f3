package token

import "fmt"

// Pos is a position in the source text. Line and Col are 1-based, Col
// counting runes; Off is the 0-based byte offset. A Pos always refers
// to the next unread rune.
type Pos struct {
	Line, Col, Off int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, col %d (offset %d)", p.Line, p.Col, p.Off)
}

// advance moves p past r, which occupies sz bytes.
func (p *Pos) advance(r rune, sz int) {
	p.Off += sz
	if r == '\n' {
		p.Line++
		p.Col = 1
		return
	}
	p.Col++
}
