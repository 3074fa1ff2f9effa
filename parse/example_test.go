package parse_test

import (
	"fmt"

	"github.com/signadot/blockdoc/block"
	"github.com/signadot/blockdoc/parse"
)

func ExampleParse() {
	doc := `<p>intro</p><!-- block:gallery {"columns":2} --><figure><!-- block:image {"id":7} /--></figure><!-- /block:gallery -->`
	bs := parse.Parse(doc, parse.ParseKeyword("block:"), parse.ParseNamespace(""))
	block.Walk(bs, func(p block.Path, b *block.Block) bool {
		if b.IsFreeform() {
			fmt.Printf("%s #text %q\n", p, b.Raw)
			return true
		}
		fmt.Printf("%s %s %v\n", p, b.Name, b.Attrs)
		return true
	})

	// Output:
	// $[0] #text "<p>intro</p>"
	// $[1] gallery map[columns:2]
	// $[1][0] image map[id:7]
}
