package main

import (
	"context"
	"strings"

	"github.com/signadot/blockdoc/block"

	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	res := []interface{}{}
	for _, sym := range doc.symbols(doc.blocks) {
		res = append(res, sym)
	}
	return res, nil
}

// symbols outlines the named blocks of a list, one symbol per block
// spanning its whole text and selecting its opener.
func (d *document) symbols(blocks []*block.Block) []protocol.DocumentSymbol {
	var res []protocol.DocumentSymbol
	for _, b := range blocks {
		if b.IsFreeform() {
			continue
		}
		sym := protocol.DocumentSymbol{
			Name:           b.Name,
			Kind:           protocol.SymbolKindObject,
			Range:          d.span(b.Start, b.End),
			SelectionRange: d.span(b.Start, b.Start+len(b.Opener)),
			Children:       d.symbols(b.Children),
		}
		var detail []string
		if b.Void {
			detail = append(detail, "void")
		}
		if b.Unterminated {
			detail = append(detail, "unterminated")
		}
		sym.Detail = strings.Join(detail, " ")
		res = append(res, sym)
	}
	return res
}

func (s *Server) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return doc.foldingRanges(), nil
}

// foldingRanges folds every named block that spans more than one line.
func (d *document) foldingRanges() []protocol.FoldingRange {
	res := []protocol.FoldingRange{}
	block.Walk(d.blocks, func(_ block.Path, b *block.Block) bool {
		if b.IsFreeform() || b.End <= b.Start {
			return true
		}
		start, _ := d.pos.LineCol(b.Start)
		end, _ := d.pos.LineCol(b.End - 1)
		if end > start {
			res = append(res, protocol.FoldingRange{
				StartLine: uint32(start),
				EndLine:   uint32(end),
				Kind:      protocol.RegionFoldingRange,
			})
		}
		return true
	})
	return res
}
