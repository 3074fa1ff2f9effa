// Package libdiff compares documents and their parse results.
//
// # Usage
//
//	// check that a parse result reconstructs its document
//	if m := libdiff.RoundTrip(doc, parse.Parse(doc)); m != nil {
//	    fmt.Println(m)
//	}
//
//	// block level edits between two versions
//	edits := libdiff.Blocks(parse.Parse(a), parse.Parse(b))
//
//	// JSON merge patch between two versions, keyed by block path
//	patch, err := libdiff.Patch(parse.Parse(a), parse.Parse(b))
//
// # Related Packages
//
//   - github.com/signadot/blockdoc/block - the compared values
package libdiff
