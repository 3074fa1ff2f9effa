package main

import (
	"context"
	"sort"
	"strings"

	"github.com/signadot/blockdoc/block"

	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.CompletionList{
		Items: s.completions(doc, doc.offset(params.Position)),
	}, nil
}

// completions offers block names after the keyword of an opener or
// closer, and an empty block pair after a bare comment opener.
func (s *Server) completions(doc *document, off int) []protocol.CompletionItem {
	before := doc.content[strings.LastIndexByte(doc.content[:off], '\n')+1 : off]
	items := []protocol.CompletionItem{}
	i := strings.LastIndex(before, "<!--")
	if i < 0 {
		return items
	}
	rest := strings.TrimLeft(before[i+4:], " \t\r\n")
	closer := strings.HasPrefix(rest, "/")
	rest = strings.TrimPrefix(rest, "/")

	if rest == "" && !closer {
		items = append(items, protocol.CompletionItem{
			Label:            "block",
			Kind:             protocol.CompletionItemKindSnippet,
			InsertTextFormat: protocol.InsertTextFormatSnippet,
			InsertText:       " " + s.lang.keyword + "${1:name} -->$0<!-- /" + s.lang.keyword + "${1:name} -->",
		})
		return items
	}
	partial, ok := strings.CutPrefix(rest, s.lang.keyword)
	if !ok || strings.ContainsAny(partial, " \t\r\n{") {
		return items
	}

	var names []string
	if closer {
		names = openNames(doc.blocks, off)
	}
	if len(names) == 0 {
		names = usedNames(doc.blocks)
	}
	for _, name := range names {
		short := strings.TrimPrefix(name, s.lang.namespace)
		if !strings.HasPrefix(short, partial) {
			continue
		}
		kind := protocol.CompletionItemKindClass
		if closer {
			kind = protocol.CompletionItemKindReference
		}
		items = append(items, protocol.CompletionItem{
			Label:      short,
			Kind:       kind,
			Detail:     name,
			InsertText: short[len(partial):],
		})
	}
	return items
}

// usedNames lists the distinct block names of the document, sorted.
func usedNames(blocks []*block.Block) []string {
	seen := map[string]bool{}
	block.Walk(blocks, func(_ block.Path, b *block.Block) bool {
		if !b.IsFreeform() {
			seen[b.Name] = true
		}
		return true
	})
	res := make([]string, 0, len(seen))
	for name := range seen {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// openNames lists the names of unterminated blocks opened before off,
// innermost first.
func openNames(blocks []*block.Block, off int) []string {
	var res []string
	block.Walk(blocks, func(_ block.Path, b *block.Block) bool {
		if b.Start >= off {
			return false
		}
		if b.Unterminated {
			res = append([]string{b.Name}, res...)
		}
		return true
	})
	return res
}
