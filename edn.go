// Package edn reads EDN (extensible data notation) text.
//
// # Usage
//
//	v, err := edn.ReadString(`{:name "alice" :age 30}`)
//	if err != nil {
//	    return err
//	}
//	age := v.Get(ir.FromKeyword("age"))
//
//	// Read one form, keep the rest
//	v, rest, err := edn.Read(`\c[lolthisisvalidedn`)
//
// Both read exactly one form; Read additionally returns the
// unconsumed remainder. Input holding no form, comments and discards
// included, yields Nil from ReadString but is an error for Read.
//
// # Related Packages
//
//   - github.com/edn-format/go-edn/ir - value model and navigation
//   - github.com/edn-format/go-edn/parse - concrete nodes with spans
//   - github.com/edn-format/go-edn/encode - render values to text
//   - github.com/edn-format/go-edn/token - source scanning and errors
package edn

import (
	"github.com/edn-format/go-edn/ir"
	"github.com/edn-format/go-edn/parse"
	"github.com/edn-format/go-edn/token"
)

// ReadString reads the first EDN form in s. Input holding no form,
// only comments and discards included, yields Nil.
func ReadString(s string, opts ...parse.Option) (*ir.Value, error) {
	src := token.New(s)
	n, err := parse.Parse(src, opts...)
	if err != nil {
		return nil, err
	}
	return parse.Elaborate(n)
}

// Read reads the first EDN form in s and returns the unconsumed
// remainder of the input. Input holding no form is CodeUnexpectedEOF;
// the error carries no position.
func Read(s string, opts ...parse.Option) (*ir.Value, string, error) {
	src := token.New(s)
	n, err := parse.Parse(src, opts...)
	if err != nil {
		return nil, "", err
	}
	if n.Implicit {
		return nil, "", &token.Error{Code: token.CodeUnexpectedEOF}
	}
	v, err := parse.Elaborate(n)
	if err != nil {
		return nil, "", err
	}
	return v, src.Rest(), nil
}
