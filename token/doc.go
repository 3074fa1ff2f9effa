// Package token finds block delimiters in a document.
//
// A delimiter is an HTML comment of the form
//
//	<!-- wp:namespace/name {"json":"attributes"} -->
//	<!-- /wp:namespace/name -->
//	<!-- wp:name /-->
//
// [Scanner.Next] returns the leftmost delimiter at or after an offset,
// classified as an opener, a closer or a void (self-closing) block.
// Offsets are absolute byte offsets into the one document given to
// [NewScanner]; the scanner never copies the document.
//
// [PosDoc] maps byte offsets to line and column for reporting.
package token
