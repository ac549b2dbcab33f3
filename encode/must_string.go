package encode

import (
	"bytes"

	"github.com/edn-format/go-edn/ir"
)

func MustString(v *ir.Value) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
