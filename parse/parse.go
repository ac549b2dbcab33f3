// Package parse reads EDN text into concrete nodes and elaborates
// them into the abstract value model.
//
// # Usage
//
//	src := token.New(`{:name "alice" :age 30}`)
//	node, err := parse.Parse(src)
//	if err != nil {
//	    return err
//	}
//	value, err := parse.Elaborate(node)
//
// Parse reads exactly one top-level form and leaves the remainder of
// the source unconsumed; token.Source.Rest returns it.
//
// # Related Packages
//
//   - github.com/edn-format/go-edn/ir - value model
//   - github.com/edn-format/go-edn/encode - render values to text
//   - github.com/edn-format/go-edn/token - source scanning
package parse

import (
	"github.com/edn-format/go-edn/debug"
	"github.com/edn-format/go-edn/ir"
	"github.com/edn-format/go-edn/token"
)

type ctxKind int

// Open parser contexts. The stack always carries a ctxTop sentinel at
// the bottom; depth above it equals the number of currently-open
// collections, tags and discards.
const (
	ctxTop ctxKind = iota
	ctxVector
	ctxList
	ctxMap
	ctxSet
	ctxTag
	ctxDiscard
)

func (k ctxKind) String() string {
	switch k {
	case ctxTop:
		return "top"
	case ctxVector:
		return "vector"
	case ctxList:
		return "list"
	case ctxMap:
		return "map"
	case ctxSet:
		return "set"
	case ctxTag:
		return "tag"
	case ctxDiscard:
		return "discard"
	}
	return "unknown"
}

func (k ctxKind) closer() rune {
	switch k {
	case ctxVector:
		return ']'
	case ctxList:
		return ')'
	case ctxMap, ctxSet:
		return '}'
	}
	return 0
}

type frame struct {
	kind  ctxKind
	start token.Pos
	tag   string

	elems      []*Node // vector/list/set accumulator
	keys, vals []*Node // map accumulator
	pendingKey *Node

	// pending holds forms discarded since the last value at this
	// level; they attach to the next value as leading trivia, or to
	// the collection as trailing trivia at close.
	pending []*Node
}

func takePending(f *frame) []*Node {
	p := f.pending
	f.pending = nil
	return p
}

type parser struct {
	src   *token.Source
	opts  *parseOpts
	stack []*frame
}

// Parse reads one top-level form from src. The parser is a loop over
// an explicit context stack, never recursive, so nesting depth in
// untrusted input is bounded by heap rather than by the call stack.
//
// EOF with open contexts is CodeUnexpectedEOF. EOF before any form
// yields an implicit Nil node.
func Parse(src *token.Source, opts ...Option) (*Node, error) {
	start := src.Pos()
	p := &parser{
		src:   src,
		opts:  newParseOpts(opts),
		stack: []*frame{{kind: ctxTop, start: start}},
	}

	for {
		src.SkipInsignificant()
		c, ok := src.Peek()
		if !ok {
			if len(p.stack) > 1 {
				return nil, token.NewError(token.CodeUnexpectedEOF, src.Pos())
			}
			return &Node{
				Type:     ir.NilType,
				Span:     Span{Start: start, End: src.Pos()},
				Discards: takePending(p.stack[0]),
				Implicit: true,
			}, nil
		}

		var done *Node
		var err *token.Error
		switch c {
		case ';':
			src.SkipToNewline()
			continue
		case '[':
			p.push(&frame{kind: ctxVector, start: src.Pos()})
			src.Next()
			continue
		case '(':
			p.push(&frame{kind: ctxList, start: src.Pos()})
			src.Next()
			continue
		case '{':
			p.push(&frame{kind: ctxMap, start: src.Pos()})
			src.Next()
			continue
		case '#':
			if err := p.dispatch(); err != nil {
				return nil, err
			}
			continue
		case ']', ')', '}':
			done, err = p.close(c)
		default:
			done, err = p.atom(c)
		}
		if err != nil {
			return nil, err
		}
		if done != nil {
			return done, nil
		}
	}
}

func (p *parser) push(f *frame) {
	p.stack = append(p.stack, f)
	if debug.Parse() {
		debug.Logf("parse: open %v at %s depth=%d\n", f.kind, f.start, len(p.stack)-1)
	}
}

func (p *parser) top() *frame {
	return p.stack[len(p.stack)-1]
}

func (p *parser) pop() *frame {
	f := p.top()
	p.stack = p.stack[:len(p.stack)-1]
	return f
}

// dispatch handles #: a set literal, a discard, or a tag name, which
// must directly follow the #.
func (p *parser) dispatch() *token.Error {
	pos := p.src.Pos()
	p.src.Next() // '#'
	switch c, ok := p.src.Peek(); {
	case !ok:
		return token.NewError(token.CodeUnexpectedEOF, p.src.Pos())
	case c == '{':
		p.src.Next()
		p.push(&frame{kind: ctxSet, start: pos})
	case c == '_':
		p.src.Next()
		p.push(&frame{kind: ctxDiscard, start: pos})
	default:
		tag, err := p.src.SlurpTag()
		if err != nil {
			return err
		}
		if tag == "" {
			// a boundary rune directly after '#': no tag name
			return token.NewError(token.CodeInvalidKeyword, pos)
		}
		p.push(&frame{kind: ctxTag, start: pos, tag: tag})
	}
	return nil
}

// close handles a closing delimiter: it must match the delimiter
// implied by the innermost open context, which must exist.
func (p *parser) close(c rune) (*Node, *token.Error) {
	top := p.top()
	if top.kind.closer() != c {
		return nil, token.UnmatchedDelimiterErr(c, p.src.Pos())
	}
	if top.kind == ctxMap && top.pendingKey != nil {
		return nil, token.NewError(token.CodeUnexpectedEOF, p.src.Pos())
	}
	p.src.Next()
	p.pop()

	n := &Node{
		Span:     Span{Start: top.start, End: p.src.Pos()},
		Trailing: takePending(top),
	}
	switch top.kind {
	case ctxVector:
		n.Type, n.Values = ir.VectorType, top.elems
	case ctxList:
		n.Type, n.Values = ir.ListType, top.elems
	case ctxSet:
		n.Type, n.Values = ir.SetType, top.elems
	case ctxMap:
		n.Type, n.Fields, n.Values = ir.MapType, top.keys, top.vals
	}
	return p.resolve(n)
}

// atom reads one string, character or bare literal.
func (p *parser) atom(c rune) (*Node, *token.Error) {
	pos := p.src.Pos()
	var n *Node
	switch c {
	case '"':
		s, err := p.src.SlurpString()
		if err != nil {
			return nil, err
		}
		n = &Node{Type: ir.StrType, Span: Span{Start: pos, End: p.src.Pos()}, Str: s}
	case '\\':
		var err *token.Error
		n, err = parseChar(p.src.SlurpChar(), Span{Start: pos, End: p.src.Pos()})
		if err != nil {
			return nil, err
		}
	default:
		lit := p.src.SlurpLiteral()
		if lit == "" {
			// not reachable: every boundary rune is dispatched above
			return nil, token.NewError(token.CodeUnexpectedEOF, pos)
		}
		var err *token.Error
		n, err = classifyLiteral(lit, Span{Start: pos, End: p.src.Pos()}, p.opts)
		if err != nil {
			return nil, err
		}
	}
	return p.resolve(n)
}

// resolve applies tag and discard frames to a freshly produced value,
// then either returns it as the finished top-level form or attaches it
// to the enclosing context.
func (p *parser) resolve(n *Node) (*Node, *token.Error) {
	for {
		top := p.top()
		if len(top.pending) > 0 {
			n.Discards = append(takePending(top), n.Discards...)
		}
		switch top.kind {
		case ctxTag:
			p.pop()
			n = &Node{
				Type:   ir.TaggedType,
				Span:   Span{Start: top.start, End: n.Span.End},
				Str:    top.tag,
				Values: []*Node{n},
			}
		case ctxDiscard:
			p.pop()
			t := p.top()
			t.pending = append(t.pending, n)
			return nil, nil
		case ctxTop:
			return n, nil
		case ctxMap:
			if top.pendingKey == nil {
				top.pendingKey = n
			} else {
				top.keys = append(top.keys, top.pendingKey)
				top.vals = append(top.vals, n)
				top.pendingKey = nil
			}
			return nil, nil
		default:
			top.elems = append(top.elems, n)
			return nil, nil
		}
	}
}
