package main

import (
	"context"
	"sync"

	"github.com/signadot/blockdoc/block"
	"github.com/signadot/blockdoc/debug"
	"github.com/signadot/blockdoc/parse"
	"github.com/signadot/blockdoc/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
	lang language
}

type document struct {
	uri     string
	content string
	version int32
	blocks  []*block.Block
	diags   []parse.Diagnostic
	pos     *token.PosDoc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version, ds.lang)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func newDocument(uri, content string, version int32, l language) *document {
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		pos:     token.NewPosDoc(content),
	}
	opts := append(l.parseOpts(), parse.ParseDiagnostics(&doc.diags))
	doc.blocks = parse.Parse(content, opts...)
	return doc
}

// position converts a byte offset to an LSP position, whose character
// counts UTF-16 code units.
func (d *document) position(off int) protocol.Position {
	line, col := d.pos.LineCol(off)
	start := d.pos.Offset(line, 0)
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(d.content[start : start+col])),
	}
}

func (d *document) span(start, end int) protocol.Range {
	return protocol.Range{Start: d.position(start), End: d.position(end)}
}

// offset is the inverse of position.
func (d *document) offset(p protocol.Position) int {
	return offsetOf(d.content, d.pos, p)
}

func offsetOf(content string, pd *token.PosDoc, p protocol.Position) int {
	i := pd.Offset(int(p.Line), 0)
	n := int(p.Character)
	for j, r := range content[i:] {
		if r == '\n' || n <= 0 {
			return i + j
		}
		n -= runeUTF16Len(r)
	}
	return len(content)
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += runeUTF16Len(r)
	}
	return n
}

func runeUTF16Len(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}

// blockAt returns the innermost block whose delimited span contains off,
// along with its path. Freeform text is skipped.
func (d *document) blockAt(off int) (block.Path, *block.Block) {
	var (
		path block.Path
		res  *block.Block
	)
	block.Walk(d.blocks, func(p block.Path, b *block.Block) bool {
		if off < b.Start || off >= b.End {
			return false
		}
		if !b.IsFreeform() {
			path, res = append(block.Path(nil), p...), b
		}
		return true
	})
	return path, res
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := validateDocument(doc)
	if debug.LSP() {
		debug.Logf("lsp %s v%d: %d diagnostics\n", doc.uri, doc.version, len(diagnostics))
		if len(diagnostics) > 0 {
			debug.LogAny(diagnostics)
		}
	}
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(doc.uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for i := range doc.diags {
		d := &doc.diags[i]
		sev := protocol.DiagnosticSeverityWarning
		if d.Kind == parse.Unterminated {
			sev = protocol.DiagnosticSeverityError
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    doc.span(d.Start, d.End),
			Severity: sev,
			Code:     d.Kind.String(),
			Source:   "blocks",
			Message:  d.At(doc.pos),
		})
	}
	return diagnostics
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := applyChanges(doc.content, params.ContentChanges)
	doc = s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func applyChanges(content string, changes []protocol.TextDocumentContentChangeEvent) string {
	for _, change := range changes {
		// sync is incremental, so a zero range is an insert at the start
		r := change.Range
		pd := token.NewPosDoc(content)
		start := offsetOf(content, pd, r.Start)
		end := offsetOf(content, pd, r.End)
		if start > end {
			continue
		}
		content = content[:start] + change.Text + content[end:]
	}
	return content
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
