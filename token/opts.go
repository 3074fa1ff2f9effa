package token

import "strings"

const (
	DefaultKeyword   = "wp:"
	DefaultNamespace = "core/"
)

type tokenOpts struct {
	keyword   string
	namespace string
}

type TokenOpt func(*tokenOpts)

// Keyword sets the marker that precedes a block name, "wp:" by default.
func Keyword(k string) TokenOpt {
	return func(o *tokenOpts) { o.keyword = k }
}

// Namespace sets the namespace given to names without one. An empty
// namespace leaves such names bare.
func Namespace(ns string) TokenOpt {
	return func(o *tokenOpts) {
		if ns != "" && !strings.HasSuffix(ns, "/") {
			ns += "/"
		}
		o.namespace = ns
	}
}

func newTokenOpts(opts ...TokenOpt) *tokenOpts {
	o := &tokenOpts{keyword: DefaultKeyword, namespace: DefaultNamespace}
	for _, f := range opts {
		f(o)
	}
	if o.keyword == "" {
		o.keyword = DefaultKeyword
	}
	return o
}
