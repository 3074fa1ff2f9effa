package encode

import (
	"github.com/signadot/blockdoc/format"
	"github.com/signadot/blockdoc/token"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeIndent pretty prints JSON output.
func EncodeIndent(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodePositions prefixes outline lines with the line:col of the block
// in the document pd describes.
func EncodePositions(pd *token.PosDoc) EncodeOption {
	return func(es *EncState) { es.pos = pd }
}

// EncodeTextWidth limits the freeform text shown per outline line, 40
// bytes by default. 0 shows the whole text.
func EncodeTextWidth(n int) EncodeOption {
	return func(es *EncState) { es.width = n }
}
