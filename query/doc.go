// Package query selects blocks with boolean expr-lang expressions.
//
// An expression sees one block at a time through these names:
//
//	name          namespaced block name, "" for freeform text
//	namespace     the part of name before the last '/'
//	attrs         decoded attributes, nil when absent or malformed
//	freeform      whether the block is text outside any delimiter
//	void          whether the block is self closing
//	unterminated  whether the document ended before the closer
//	depth         nesting level, 0 at the top
//	children      number of child blocks
//	path          index path such as $[0][2]
//	html          inner HTML
//	text          the exact document text of the block
//
// For example
//
//	name == "core/heading" && (attrs?.level ?? 1) >= 2
//	freeform && text contains "TODO"
package query
