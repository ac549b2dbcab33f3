package debug

import (
	"bytes"
	"fmt"
	"os"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/edn-format/go-edn/encode"
	"github.com/edn-format/go-edn/ir"
)

// Logf writes to stderr, rendering *ir.Value arguments as EDN text.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Value:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Value] %v", x)
				continue
			}
			args[i] = buf.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

// Diff returns a character diff of two renderings with insertions and
// deletions marked, for debug logs and test failure output.
func Diff(from, to string) string {
	cfg := diffpatch.New()
	diffs := cfg.DiffMain(from, to, false)
	diffs = cfg.DiffCleanupSemantic(diffs)
	return cfg.DiffPrettyText(diffs)
}
