package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/blockdoc/block"

	"github.com/segmentio/encoding/json"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	p, b := doc.blockAt(doc.offset(params.Position))
	if b == nil {
		return nil, nil
	}
	rng := doc.span(b.Start, b.Start+len(b.Opener))
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(p, b),
		},
		Range: &rng,
	}, nil
}

func buildHoverText(p block.Path, b *block.Block) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("**%s** `%s`", b.Name, p))

	var flags []string
	if b.Void {
		flags = append(flags, "void")
	}
	if b.Unterminated {
		flags = append(flags, "unterminated")
	}
	if n := len(b.Children); n > 0 {
		flags = append(flags, fmt.Sprintf("%d inner blocks", n))
	}
	if len(flags) > 0 {
		parts = append(parts, strings.Join(flags, ", "))
	}

	if b.Attrs != nil {
		d, err := json.MarshalIndent(b.Attrs, "", "  ")
		if err == nil {
			parts = append(parts, "```json\n"+string(d)+"\n```")
		}
	}
	return strings.Join(parts, "\n\n")
}
