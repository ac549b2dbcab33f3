// Package encode renders values to EDN text.
//
// # Usage
//
//	m := ir.NewMap()
//	m.Put(ir.FromKeyword("name"), ir.FromString("alice"))
//	m.Put(ir.FromKeyword("age"), ir.FromInt(30))
//	err := encode.Encode(m, os.Stdout)
//
//	// Encode with terminal colors
//	err := encode.Encode(m, os.Stdout, encode.AutoColors(os.Stdout)...)
//
// Output is a single line of EDN that reads back to an equal value.
//
// # Related Packages
//
//   - github.com/edn-format/go-edn/ir - value model
//   - github.com/edn-format/go-edn/parse - parse text to values
package encode
