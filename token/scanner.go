package token

import (
	"strings"

	"github.com/signadot/blockdoc/debug"
)

const (
	openMarker  = "<!--"
	closeMarker = "-->"
)

// Scanner finds delimiters in a single document. It keeps a small cache
// of the last comment close marker it looked up, so that a full pass of
// increasing offsets costs time linear in the document length. A Scanner
// is not safe for concurrent use; create one per document.
type Scanner struct {
	doc string
	opt *tokenOpts

	// there is no closeMarker in doc[cFrom:cAt]; cAt is the next one
	// or -1 when there is none.
	cOK   bool
	cFrom int
	cAt   int

	// trailing layout of the comment closed at tailAt
	tailAt   int
	tailEnd  int
	tailVoid bool
}

func NewScanner(doc string, opts ...TokenOpt) *Scanner {
	return &Scanner{
		doc:    doc,
		opt:    newTokenOpts(opts...),
		tailAt: -1,
	}
}

// Next returns the first delimiter that starts at or after from.
func Next(doc string, from int, opts ...TokenOpt) Token {
	return NewScanner(doc, opts...).Next(from)
}

// Tokenize returns every delimiter of doc in document order.
func Tokenize(doc string, opts ...TokenOpt) []Token {
	s := NewScanner(doc, opts...)
	var res []Token
	for tok := s.Next(0); tok.Type != TNoMore; tok = s.Next(tok.End()) {
		res = append(res, tok)
	}
	return res
}

func (s *Scanner) Doc() string {
	return s.doc
}

func (s *Scanner) Next(from int) Token {
	from = max(0, from)
	for i := from; i < len(s.doc); i++ {
		n := strings.Index(s.doc[i:], openMarker)
		if n < 0 {
			break
		}
		i += n
		tok, st := s.matchAt(i)
		switch st {
		case matched:
			if debug.Tokens() {
				debug.Logf("token %s payload=%q\n", tok.Info(), tok.Payload)
			}
			return tok
		case exhausted:
			return Token{Type: TNoMore}
		}
	}
	return Token{Type: TNoMore}
}

type matchState int

const (
	noMatch matchState = iota
	matched
	// no comment is closed after this point, so nothing further can match
	exhausted
)

func (s *Scanner) matchAt(i int) (Token, matchState) {
	doc := s.doc
	j := skipSpace(doc, i+len(openMarker))
	closer := false
	if j < len(doc) && doc[j] == '/' {
		closer = true
		j++
	}
	if !strings.HasPrefix(doc[j:], s.opt.keyword) {
		return Token{}, noMatch
	}
	j += len(s.opt.keyword)
	k := scanIdent(doc, j)
	if k == j {
		return Token{}, noMatch
	}
	ns := s.opt.namespace
	if k < len(doc) && doc[k] == '/' {
		if m := scanIdent(doc, k+1); m > k+1 {
			ns = doc[j : k+1]
			j, k = k+1, m
		}
	}
	name := doc[j:k]
	bodyStart := skipSpace(doc, k)
	if bodyStart == k {
		return Token{}, noMatch
	}
	end := s.closeAt(bodyStart)
	if end < 0 {
		return Token{}, exhausted
	}
	bodyEnd, void := s.tail(end)
	bodyEnd = max(bodyEnd, bodyStart)
	payload := doc[bodyStart:bodyEnd]
	if payload != "" && (payload[0] != '{' || payload[len(payload)-1] != '}') {
		return Token{}, noMatch
	}
	tok := Token{
		Type:    TOpener,
		Name:    ns + name,
		Payload: payload,
		Attrs:   DecodeAttrs(payload),
		Start:   i,
		Len:     end + len(closeMarker) - i,
	}
	switch {
	case closer:
		tok.Type = TCloser
	case void:
		tok.Type = TVoid
	}
	return tok, matched
}

// closeAt returns the offset of the first closeMarker at or after p, or -1.
func (s *Scanner) closeAt(p int) int {
	if s.cOK && p >= s.cFrom && (s.cAt < 0 || p <= s.cAt) {
		return s.cAt
	}
	s.cOK, s.cFrom = true, p
	n := strings.Index(s.doc[p:], closeMarker)
	if n < 0 {
		s.cAt = -1
	} else {
		s.cAt = p + n
	}
	return s.cAt
}

// tail reads backwards from the closeMarker at end over `WS* "/"? WS*`,
// returning where the comment body ends and whether it is self-closing.
// The result depends only on end, so it is cached.
func (s *Scanner) tail(end int) (int, bool) {
	if s.tailAt == end {
		return s.tailEnd, s.tailVoid
	}
	j := skipSpaceBack(s.doc, end)
	void := false
	if j > 0 && s.doc[j-1] == '/' {
		void = true
		j = skipSpaceBack(s.doc, j-1)
	}
	s.tailAt, s.tailEnd, s.tailVoid = end, j, void
	return j, void
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func skipSpace(d string, i int) int {
	for i < len(d) && isSpace(d[i]) {
		i++
	}
	return i
}

func skipSpaceBack(d string, i int) int {
	for i > 0 && isSpace(d[i-1]) {
		i--
	}
	return i
}

func isIdentStart(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func isIdent(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9') || c == '_' || c == '-'
}

// scanIdent scans [a-z][a-z0-9_-]* at i, returning its end (i if none).
func scanIdent(d string, i int) int {
	if i >= len(d) || !isIdentStart(d[i]) {
		return i
	}
	i++
	for i < len(d) && isIdent(d[i]) {
		i++
	}
	return i
}
