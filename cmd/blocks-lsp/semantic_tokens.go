package main

import (
	"context"
	"sort"
	"strings"

	"github.com/signadot/blockdoc/debug"
	"github.com/signadot/blockdoc/token"

	"go.lsp.dev/protocol"
)

// These must match the legend sent in Initialize.
var (
	tokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenComment,
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenType,
		protocol.SemanticTokenString,
		protocol.SemanticTokenOperator,
	}
	tokenModifiers = []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
	}
)

type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType protocol.SemanticTokenTypes
	modifiers []protocol.SemanticTokenModifiers
}

// delimiterTokens splits each delimiter of the document into comment
// markers, the keyword, the block name, the attribute payload and the
// void marker. Payloads spanning lines are not highlighted.
func (s *Server) delimiterTokens(doc *document) []tokenInfo {
	var res []tokenInfo
	add := func(off int, text string, tt protocol.SemanticTokenTypes, mods ...protocol.SemanticTokenModifiers) {
		p := doc.position(off)
		res = append(res, tokenInfo{
			line:      p.Line,
			character: p.Character,
			length:    uint32(utf16Len(text)),
			tokenType: tt,
			modifiers: mods,
		})
	}

	toks := token.Tokenize(doc.content, s.lang.tokenOpts()...)
	if debug.LSP() {
		token.PrintTokens(toks, doc.uri)
	}
	for _, tok := range toks {
		text := doc.content[tok.Start:tok.End()]
		add(tok.Start, "<!--", protocol.SemanticTokenComment)

		i := len("<!--")
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		kw := s.lang.keyword
		if tok.Type == token.TCloser {
			kw = "/" + kw
		}
		add(tok.Start+i, kw, protocol.SemanticTokenKeyword)
		i += len(kw)

		j := i
		for j < len(text) && !isSpace(text[j]) {
			j++
		}
		if tok.Type == token.TCloser {
			add(tok.Start+i, text[i:j], protocol.SemanticTokenType)
		} else {
			add(tok.Start+i, text[i:j], protocol.SemanticTokenType, protocol.SemanticTokenModifierDefinition)
		}

		tail := len(text) - len("-->")
		if tok.HasPayload() && !strings.ContainsRune(tok.Payload, '\n') {
			if k := strings.Index(text[j:], tok.Payload); k >= 0 {
				add(tok.Start+j+k, tok.Payload, protocol.SemanticTokenString)
			}
		}
		if tok.Type == token.TVoid {
			if k := strings.LastIndexByte(text[:tail], '/'); k >= 0 {
				add(tok.Start+k, "/", protocol.SemanticTokenOperator)
			}
		}
		add(tok.Start+tail, "-->", protocol.SemanticTokenComment)
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].line != res[j].line {
			return res[i].line < res[j].line
		}
		return res[i].character < res[j].character
	})
	return res
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// encodeTokens produces the relative encoding of sorted tokens.
func encodeTokens(tokenList []tokenInfo) []uint32 {
	typeMap := make(map[protocol.SemanticTokenTypes]uint32)
	for i, tt := range tokenTypes {
		typeMap[tt] = uint32(i)
	}
	modifierMap := make(map[protocol.SemanticTokenModifiers]uint32)
	for i, tm := range tokenModifiers {
		modifierMap[tm] = uint32(i)
	}

	tokens := []uint32{}
	var prevLine, prevChar uint32
	for _, ti := range tokenList {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		}
		bits := uint32(0)
		for _, mod := range ti.modifiers {
			if idx, ok := modifierMap[mod]; ok {
				bits |= 1 << idx
			}
		}
		tokens = append(tokens, deltaLine, deltaChar, ti.length, typeMap[ti.tokenType], bits)
		prevLine = ti.line
		prevChar = ti.character
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeTokens(s.delimiterTokens(doc)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	var inRange []tokenInfo
	for _, ti := range s.delimiterTokens(doc) {
		if ti.line >= params.Range.Start.Line && ti.line <= params.Range.End.Line {
			inRange = append(inRange, ti)
		}
	}
	return &protocol.SemanticTokens{
		Data: encodeTokens(inRange),
	}, nil
}
