// Package parse builds block trees from delimited documents.
//
// # Usage
//
//	blocks := parse.Parse(doc)
//
//	// a different keyword, names without a default namespace
//	blocks = parse.Parse(doc, parse.ParseKeyword("block:"), parse.ParseNamespace(""))
//
//	// collect the conditions the parser recovered from
//	var diags []parse.Diagnostic
//	blocks = parse.Parse(doc, parse.ParseDiagnostics(&diags))
//
// Parsing never fails. Malformed attributes decode to nil, closers with
// no open block are dropped, and blocks still open at the end of the
// document are closed there.
//
// # Related Packages
//
//   - github.com/signadot/blockdoc/block - the parse result
//   - github.com/signadot/blockdoc/token - delimiter scanning
package parse
