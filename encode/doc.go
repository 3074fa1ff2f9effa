// Package encode writes parse results as JSON, the WordPress block
// parser JSON shape, YAML or an indented outline.
//
// # Usage
//
//	blocks := parse.Parse(doc)
//	err := encode.Encode(blocks, os.Stdout, encode.EncodeFormat(format.WPFormat))
//
//	// outline with colors and line:col of each block
//	err = encode.Encode(blocks, os.Stdout,
//	    encode.EncodeFormat(format.TreeFormat),
//	    encode.EncodeColors(encode.NewColors()),
//	    encode.EncodePositions(token.NewPosDoc(doc)))
//
// # Related Packages
//
//   - github.com/signadot/blockdoc/block - the encoded values
//   - github.com/signadot/blockdoc/format - format names
package encode
