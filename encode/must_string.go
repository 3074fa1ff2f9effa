package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/blockdoc/block"
)

func MustString(blocks []*block.Block, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(blocks, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
