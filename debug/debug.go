package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("BLOCKDOC_DEBUG_TOKENS")
	d.Parse = boolEnv("BLOCKDOC_DEBUG_PARSE")
	d.LSP = boolEnv("BLOCKDOC_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func LSP() bool {
	return d.LSP
}
