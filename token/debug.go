package token

import "github.com/signadot/blockdoc/debug"

// PrintTokens logs toks to stderr, one per line.
func PrintTokens(toks []Token, msg string) {
	debug.Logf("%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		debug.Logf("\t%s `%s` [%d,%d)\n", t.Type, t.Name, t.Start, t.End())
	}
}
