// Package block holds the parsed form of a delimited document: an ordered
// sequence of [Block] trees interleaved with freeform text.
//
// Every block keeps the exact document text it spans ([Block.Raw]) split
// at its children ([Block.Segments]), so [Text] of a parse result is the
// original document.
//
// # Related Packages
//
//   - github.com/signadot/blockdoc/parse - builds blocks from text
//   - github.com/signadot/blockdoc/encode - encodes blocks as JSON, YAML or an outline
package block
