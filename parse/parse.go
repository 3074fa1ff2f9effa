package parse

import (
	"github.com/signadot/blockdoc/block"
	"github.com/signadot/blockdoc/debug"
	"github.com/signadot/blockdoc/token"
)

// Parse splits doc into top level blocks and freeform text.
func Parse(doc string, opts ...ParseOption) []*block.Block {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		doc:  doc,
		sc:   token.NewScanner(doc, pOpts.TokenizeOpts()...),
		opts: pOpts,
	}
	for p.proceed() {
	}
	return p.output
}

func ParseBytes(d []byte, opts ...ParseOption) []*block.Block {
	return Parse(string(d), opts...)
}

// frame is a block whose opener has been seen but not its closer.
type frame struct {
	b *block.Block
	// start of the segment being accumulated
	segStart int
}

type parser struct {
	doc  string
	sc   *token.Scanner
	opts *parseOpts

	// offset is where unconsumed text starts, scan where the next
	// delimiter search starts. They differ only after a stray closer
	// kept as text.
	offset int
	scan   int

	stack  []frame
	output []*block.Block
}

func (p *parser) proceed() bool {
	tok := p.sc.Next(p.scan)
	if debug.Parse() {
		debug.Logf("parse %s depth=%d offset=%d\n", tok.Info(), len(p.stack), p.offset)
	}
	if tok.BadAttrs() && tok.Type != token.TCloser {
		p.diag(BadAttrs, &tok, "")
	}
	switch tok.Type {
	case token.TNoMore:
		if len(p.stack) == 0 {
			p.addFreeform(len(p.doc))
		} else {
			p.closeAll()
		}
		p.offset, p.scan = len(p.doc), len(p.doc)
		return false

	case token.TVoid:
		raw := p.doc[tok.Start:tok.End()]
		b := &block.Block{
			Name:     tok.Name,
			Attrs:    tok.Attrs,
			Raw:      raw,
			Segments: []string{raw},
			Opener:   raw,
			Start:    tok.Start,
			End:      tok.End(),
			Void:     true,
		}
		if len(p.stack) == 0 {
			p.addFreeform(tok.Start)
			p.output = append(p.output, b)
		} else {
			p.top().addChild(p.doc, b)
		}
		p.advance(tok.End())
		return true

	case token.TOpener:
		if len(p.stack) == 0 {
			p.addFreeform(tok.Start)
		}
		p.stack = append(p.stack, frame{
			b: &block.Block{
				Name:   tok.Name,
				Attrs:  tok.Attrs,
				Opener: p.doc[tok.Start:tok.End()],
				Start:  tok.Start,
			},
			segStart: tok.Start,
		})
		p.advance(tok.End())
		return true

	case token.TCloser:
		if len(p.stack) == 0 {
			p.diag(UnmatchedCloser, &tok, "")
			if p.opts.keepStray {
				p.scan = tok.End()
				return true
			}
			p.addFreeform(tok.Start)
			p.advance(tok.End())
			return true
		}
		open := p.top().b.Name
		if tok.Name != open {
			p.diag(MismatchedCloser, &tok, open)
			if p.opts.strictClosers {
				p.scan = tok.End()
				return true
			}
		}
		f := p.pop()
		p.finish(f, tok.Start, tok.End())
		p.advance(tok.End())
		return true
	}
	return false
}

func (p *parser) advance(off int) {
	p.offset, p.scan = off, off
}

func (p *parser) top() *frame {
	return &p.stack[len(p.stack)-1]
}

func (p *parser) pop() frame {
	f := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return f
}

// addFreeform emits doc[offset:end] as a freeform block when non-empty.
func (p *parser) addFreeform(end int) {
	if end <= p.offset {
		return
	}
	p.output = append(p.output, block.Freeform(p.doc, p.offset, end))
}

// finish completes f, whose closer spans doc[closeStart:closeEnd], and
// attaches it to the enclosing frame or the output.
func (p *parser) finish(f frame, closeStart, closeEnd int) {
	b := f.b
	b.Segments = append(b.Segments, p.doc[f.segStart:closeEnd])
	b.Raw = p.doc[b.Start:closeEnd]
	b.End = closeEnd
	b.Closer = p.doc[closeStart:closeEnd]
	if len(p.stack) == 0 {
		p.output = append(p.output, b)
		return
	}
	p.top().addChild(p.doc, b)
}

// closeAll closes every open frame at the end of the document, innermost
// first.
func (p *parser) closeAll() {
	end := len(p.doc)
	for len(p.stack) > 0 {
		f := p.pop()
		f.b.Unterminated = true
		p.report(Diagnostic{Kind: Unterminated, Name: f.b.Name, Start: f.b.Start, End: f.b.Start + len(f.b.Opener)})
		p.finish(f, end, end)
	}
}

func (f *frame) addChild(doc string, c *block.Block) {
	f.b.Segments = append(f.b.Segments, doc[f.segStart:c.Start])
	f.b.Children = append(f.b.Children, c)
	f.segStart = c.End
}

func (p *parser) diag(k DiagKind, tok *token.Token, open string) {
	p.report(Diagnostic{Kind: k, Name: tok.Name, Start: tok.Start, End: tok.End(), Open: open})
}

func (p *parser) report(d Diagnostic) {
	if p.opts.diags == nil {
		return
	}
	*p.opts.diags = append(*p.opts.diags, d)
}
