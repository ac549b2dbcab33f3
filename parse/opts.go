package parse

// parseOpts carries the reader capabilities. Both default on; turning
// one off makes the corresponding literals parse errors, for callers
// that need the restricted grammar.
type parseOpts struct {
	floats  bool
	bignums bool
}

type Option func(*parseOpts)

// Floats toggles 64-bit float literals. With floats off, a token
// parseable only as a float is CodeNoFloat. M-suffixed decimals are
// governed by BigNums, not by this option.
func Floats(v bool) Option {
	return func(o *parseOpts) { o.floats = v }
}

// BigNums toggles arbitrary-precision integer (N suffix) and decimal
// (M suffix) literals.
func BigNums(v bool) Option {
	return func(o *parseOpts) { o.bignums = v }
}

func newParseOpts(opts []Option) *parseOpts {
	o := &parseOpts{floats: true, bignums: true}
	for _, f := range opts {
		f(o)
	}
	return o
}
