package token

import (
	"fmt"
)

type TokenType int

const (
	TNoMore TokenType = iota
	TOpener
	TCloser
	TVoid
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNoMore: "TNoMore",
		TOpener: "TOpener",
		TCloser: "TCloser",
		TVoid:   "TVoid",
	}[t]
}

// Token is one classified delimiter. A TNoMore token carries no
// position data.
type Token struct {
	Type TokenType

	// Name is the namespaced block name, with the default namespace
	// applied when the delimiter has none.
	Name string

	// Attrs is the decoded attribute object, nil when there was no
	// payload or it did not decode to a JSON object.
	Attrs map[string]any

	// Payload is the raw attribute text including its braces.
	Payload string

	Start int
	Len   int
}

func (t *Token) End() int {
	return t.Start + t.Len
}

func (t *Token) HasPayload() bool {
	return t.Payload != ""
}

// BadAttrs reports whether a payload was present but did not decode.
func (t *Token) BadAttrs() bool {
	return t.Payload != "" && t.Attrs == nil
}

func (t *Token) Info() string {
	if t.Type == TNoMore {
		return t.Type.String()
	}
	return fmt.Sprintf("%s %s [%d,%d)", t.Type, t.Name, t.Start, t.End())
}
