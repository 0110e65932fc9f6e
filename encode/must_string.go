package encode

import (
	"bytes"

	"github.com/flying-sheep/plist/ir"
)

func MustString(n *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
