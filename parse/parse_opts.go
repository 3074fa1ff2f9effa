package parse

import (
	"github.com/signadot/blockdoc/token"
)

type parseOpts struct {
	keyword       *string
	namespace     *string
	diags         *[]Diagnostic
	strictClosers bool
	keepStray     bool
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	var res []token.TokenOpt
	if o.keyword != nil {
		res = append(res, token.Keyword(*o.keyword))
	}
	if o.namespace != nil {
		res = append(res, token.Namespace(*o.namespace))
	}
	return res
}

type ParseOption func(*parseOpts)

// ParseKeyword sets the marker before block names, "wp:" by default.
func ParseKeyword(k string) ParseOption {
	return func(o *parseOpts) { o.keyword = &k }
}

// ParseNamespace sets the namespace of names written without one,
// "core/" by default.
func ParseNamespace(ns string) ParseOption {
	return func(o *parseOpts) { o.namespace = &ns }
}

// ParseDiagnostics appends recovered conditions to ds.
func ParseDiagnostics(ds *[]Diagnostic) ParseOption {
	return func(o *parseOpts) { o.diags = ds }
}

// ParseStrictClosers ignores closers whose name differs from the open
// block instead of closing it.
func ParseStrictClosers(v bool) ParseOption {
	return func(o *parseOpts) { o.strictClosers = v }
}

// ParseKeepStrayClosers keeps closers without an open block as freeform
// text, so that the result always reconstructs the whole document.
func ParseKeepStrayClosers(v bool) ParseOption {
	return func(o *parseOpts) { o.keepStray = v }
}
