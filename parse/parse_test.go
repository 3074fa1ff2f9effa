package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/blockdoc/block"
)

// shape is the part of a block the tree tests compare.
type shape struct {
	Name     string
	Attrs    map[string]any
	Text     string
	Children []shape
}

func shapes(bs []*block.Block) []shape {
	var res []shape
	for _, b := range bs {
		s := shape{Name: b.Name, Attrs: b.Attrs, Children: shapes(b.Children)}
		if b.IsFreeform() {
			s.Text = b.Raw
		}
		res = append(res, s)
	}
	return res
}

var blockOpts = []ParseOption{ParseKeyword("block:"), ParseNamespace("")}

func TestParseScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []shape
	}{
		{
			name: "nested",
			in:   `<!-- block:col {"n":3} --><!-- block:row --><!-- /block:row --><!-- /block:col -->`,
			want: []shape{{
				Name:     "col",
				Attrs:    map[string]any{"n": float64(3)},
				Children: []shape{{Name: "row"}},
			}},
		},
		{
			name: "void",
			in:   `text<!-- block:img / -->more`,
			want: []shape{
				{Text: "text"},
				{Name: "img"},
				{Text: "more"},
			},
		},
		{
			name: "unmatched closer",
			in:   `<!-- /block:row -->`,
		},
		{
			name: "no blocks",
			in:   "just <b>html</b>\n<!-- a comment -->",
			want: []shape{{Text: "just <b>html</b>\n<!-- a comment -->"}},
		},
		{
			name: "empty",
			in:   "",
		},
		{
			name: "siblings",
			in:   `<!-- block:p {"i":0} /-->a<!-- block:q --><!-- /block:q -->b<!-- block:r /-->`,
			want: []shape{
				{Name: "p", Attrs: map[string]any{"i": float64(0)}},
				{Text: "a"},
				{Name: "q"},
				{Text: "b"},
				{Name: "r"},
			},
		},
		{
			name: "text between children stays in the parent",
			in:   `<!-- block:g -->x<!-- block:a /-->y<!-- block:b /-->z<!-- /block:g -->`,
			want: []shape{{
				Name:     "g",
				Children: []shape{{Name: "a"}, {Name: "b"}},
			}},
		},
		{
			name: "text before stray closer is kept",
			in:   `a<!-- /block:x -->b`,
			want: []shape{{Text: "a"}, {Text: "b"}},
		},
		{
			name: "malformed attrs",
			in:   `<!-- block:a {"a":} /-->`,
			want: []shape{{Name: "a"}},
		},
		{
			name: "empty attrs object",
			in:   `<!-- block:a {} /-->`,
			want: []shape{{Name: "a", Attrs: map[string]any{}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shapes(Parse(tt.in, blockOpts...))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseNullVersusEmptyAttrs(t *testing.T) {
	bs := Parse(`<!-- wp:a /--><!-- wp:b {} /--><!-- wp:c {"x":} /-->`)
	if len(bs) != 3 {
		t.Fatalf("got %d blocks", len(bs))
	}
	if bs[0].Attrs != nil {
		t.Errorf("no payload: expected nil attrs")
	}
	if bs[1].Attrs == nil || len(bs[1].Attrs) != 0 {
		t.Errorf("{} payload: expected empty attrs, got %#v", bs[1].Attrs)
	}
	if bs[2].Attrs != nil {
		t.Errorf("bad payload: expected nil attrs")
	}
}

func TestParseBytes(t *testing.T) {
	doc := "<p>é</p><!-- block:gallery {\"ids\":[1,2]} --><!-- block:img /--><!-- /block:gallery -->"
	got := ParseBytes([]byte(doc), blockOpts...)
	if diff := cmp.Diff(shapes(Parse(doc, blockOpts...)), shapes(got)); diff != "" {
		t.Errorf("bytes and string disagree (-string +bytes):\n%s", diff)
	}
	if len(got) != 2 || got[1].Name != "gallery" || got[1].Start != len("<p>é</p>") {
		t.Fatalf("got %+v", got)
	}
	if block.Text(got) != doc {
		t.Errorf("text %q", block.Text(got))
	}
	if bs := ParseBytes(nil); len(bs) != 0 {
		t.Errorf("nil input: got %d blocks", len(bs))
	}
}

func TestParseVoidBlock(t *testing.T) {
	doc := `text<!-- wp:img / -->more`
	bs := Parse(doc)
	if len(bs) != 3 {
		t.Fatalf("got %d blocks", len(bs))
	}
	img := bs[1]
	if img.Name != "core/img" || !img.Void || len(img.Children) != 0 {
		t.Errorf("unexpected %+v", img)
	}
	if img.Raw != `<!-- wp:img / -->` || img.InnerHTML() != "" {
		t.Errorf("raw %q inner %q", img.Raw, img.InnerHTML())
	}
	if img.Start != 4 || img.End != 4+len(img.Raw) {
		t.Errorf("span [%d,%d)", img.Start, img.End)
	}
}

func TestParseNestingDepth(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100, 20000} {
		doc := strings.Repeat("<!-- wp:x -->", n) + strings.Repeat("<!-- /wp:x -->", n)
		bs := Parse(doc)
		if got := block.Depth(bs); got != n {
			t.Fatalf("n=%d: depth %d", n, got)
		}
		b := bs[0]
		for i := 1; i < n; i++ {
			if len(b.Children) != 1 {
				t.Fatalf("n=%d: level %d has %d children", n, i, len(b.Children))
			}
			b = b.Children[0]
		}
		if len(b.Children) != 0 {
			t.Fatalf("n=%d: innermost block has children", n)
		}
		if block.Text(bs) != doc {
			t.Fatalf("n=%d: round trip failed", n)
		}
	}
}

func TestWalkNestingDepth(t *testing.T) {
	const n = 40000
	doc := strings.Repeat("<!-- wp:x -->", n) + strings.Repeat("<!-- /wp:x -->", n)
	bs := Parse(doc)
	var deepest int
	allocs := testing.AllocsPerRun(1, func() {
		deepest = 0
		block.Walk(bs, func(p block.Path, _ *block.Block) bool {
			deepest = max(deepest, len(p))
			return true
		})
	})
	if deepest != n {
		t.Fatalf("deepest path %d, want %d", deepest, n)
	}
	// the path and the stack grow by doubling, not once per block
	if allocs > 200 {
		t.Errorf("walk made %.0f allocations for depth %d", allocs, n)
	}
	if got := block.Count(bs); got != n {
		t.Errorf("count %d", got)
	}
}

func TestParseSiblingOrder(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<!-- wp:list -->")
	for _, name := range []string{"c", "a", "d", "b"} {
		sb.WriteString("<!-- wp:" + name + " --><!-- /wp:" + name + " -->\n")
	}
	sb.WriteString("<!-- /wp:list -->")
	bs := Parse(sb.String())
	var got []string
	for _, c := range bs[0].Children {
		got = append(got, c.Name)
	}
	want := []string{"core/c", "core/a", "core/d", "core/b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseSegments(t *testing.T) {
	doc := `<!-- wp:g -->x<!-- wp:a /-->y<!-- wp:b --><!-- /wp:b -->z<!-- /wp:g -->`
	bs := Parse(doc)
	g := bs[0]
	want := []string{`<!-- wp:g -->x`, `y`, `z<!-- /wp:g -->`}
	if diff := cmp.Diff(want, g.Segments); diff != "" {
		t.Errorf("segments (-want +got):\n%s", diff)
	}
	if g.Raw != doc || g.Opener != `<!-- wp:g -->` || g.Closer != `<!-- /wp:g -->` {
		t.Errorf("raw %q opener %q closer %q", g.Raw, g.Opener, g.Closer)
	}
	if g.InnerHTML() != "xyz" {
		t.Errorf("inner html %q", g.InnerHTML())
	}
}

func TestParseUnterminated(t *testing.T) {
	doc := `a<!-- wp:outer -->x<!-- wp:inner -->y`
	var diags []Diagnostic
	bs := Parse(doc, ParseDiagnostics(&diags))
	if len(bs) != 2 {
		t.Fatalf("got %d blocks", len(bs))
	}
	if bs[0].Raw != "a" {
		t.Errorf("leading freeform %q", bs[0].Raw)
	}
	outer := bs[1]
	if outer.Name != "core/outer" || !outer.Unterminated || outer.Closer != "" {
		t.Errorf("outer %+v", outer)
	}
	if outer.End != len(doc) || outer.Raw != doc[1:] {
		t.Errorf("outer span [%d,%d)", outer.Start, outer.End)
	}
	if len(outer.Children) != 1 {
		t.Fatalf("outer children %d", len(outer.Children))
	}
	inner := outer.Children[0]
	if !inner.Unterminated || inner.InnerHTML() != "y" {
		t.Errorf("inner %+v", inner)
	}
	if outer.InnerHTML() != "x" {
		t.Errorf("outer inner html %q", outer.InnerHTML())
	}
	if block.Text(bs) != doc {
		t.Errorf("round trip %q", block.Text(bs))
	}
	var names []string
	for _, d := range diags {
		if d.Kind != Unterminated {
			t.Errorf("unexpected %s", d.Kind)
		}
		names = append(names, d.Name)
	}
	if diff := cmp.Diff([]string{"core/inner", "core/outer"}, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseMismatchedCloser(t *testing.T) {
	doc := `<!-- wp:a --><!-- wp:b -->x<!-- /wp:a -->y<!-- /wp:a -->`

	var diags []Diagnostic
	lenient := shapes(Parse(doc, ParseDiagnostics(&diags)))
	want := []shape{{
		Name:     "core/a",
		Children: []shape{{Name: "core/b"}},
	}}
	if diff := cmp.Diff(want, lenient); diff != "" {
		t.Errorf("lenient (-want +got):\n%s", diff)
	}
	if len(diags) != 1 || diags[0].Kind != MismatchedCloser || diags[0].Open != "core/b" {
		t.Errorf("diags %+v", diags)
	}

	diags = nil
	bs := Parse(doc, ParseStrictClosers(true), ParseDiagnostics(&diags))
	strict := shapes(bs)
	want = []shape{{
		Name:     "core/a",
		Children: []shape{{Name: "core/b"}},
	}}
	if diff := cmp.Diff(want, strict); diff != "" {
		t.Errorf("strict (-want +got):\n%s", diff)
	}
	// in strict mode both a closers are ignored while b is open, so
	// both blocks run to the end of the document.
	b := bs[0].Children[0]
	if b.InnerHTML() != "x<!-- /wp:a -->y<!-- /wp:a -->" || !b.Unterminated {
		t.Errorf("strict inner %q", b.InnerHTML())
	}
	if !bs[0].Unterminated {
		t.Errorf("expected a to be unterminated")
	}
	if block.Text(bs) != doc {
		t.Errorf("round trip")
	}
	kinds := []DiagKind{}
	for _, d := range diags {
		kinds = append(kinds, d.Kind)
	}
	if diff := cmp.Diff([]DiagKind{MismatchedCloser, MismatchedCloser, Unterminated, Unterminated}, kinds); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseStrayClosers(t *testing.T) {
	doc := `a<!-- /wp:x -->b<!-- wp:y /-->`
	var diags []Diagnostic
	bs := Parse(doc, ParseDiagnostics(&diags))
	if got := block.Text(bs); got != "ab<!-- wp:y /-->" {
		t.Errorf("dropped closer: %q", got)
	}
	if len(diags) != 1 || !errors.Is(&diags[0], ErrUnmatchedCloser) {
		t.Errorf("diags %v", diags)
	}
	if diags[0].Start != 1 || diags[0].End != 1+len(`<!-- /wp:x -->`) {
		t.Errorf("diag span %d %d", diags[0].Start, diags[0].End)
	}

	bs = Parse(doc, ParseKeepStrayClosers(true))
	if len(bs) != 2 {
		t.Fatalf("got %d blocks", len(bs))
	}
	if bs[0].Raw != `a<!-- /wp:x -->b` || !bs[0].IsFreeform() {
		t.Errorf("kept closer: %q", bs[0].Raw)
	}
	if block.Text(bs) != doc {
		t.Errorf("round trip")
	}
}

func TestParseBadAttrsDiagnostic(t *testing.T) {
	var diags []Diagnostic
	Parse(`<!-- wp:a {"a":} --><!-- /wp:a {"b":} -->`, ParseDiagnostics(&diags))
	if len(diags) != 1 || diags[0].Kind != BadAttrs || diags[0].Name != "core/a" {
		t.Fatalf("diags %v", diags)
	}
	if !strings.Contains(diags[0].Error(), "[0,") {
		t.Errorf("error %q", diags[0].Error())
	}
}

// columns is the nested fixture used by the WordPress block parser tests.
var columns = "<!-- wp:columns {\"columns\":3} -->\n" +
	"<div class=\"wp-block-columns has-3-columns\">\n" +
	"\t<!-- wp:column -->\n" +
	"\t<div class=\"wp-block-column\">\n" +
	"\t\t<!-- wp:paragraph -->\n" +
	"\t\t<p>Left</p>\n" +
	"\t\t<!-- /wp:paragraph -->\n" +
	"\t</div>\n" +
	"\t<!-- /wp:column -->\n" +
	"\n" +
	"\t<!-- wp:column -->\n" +
	"\t<div class=\"wp-block-column\">\n" +
	"\t\t<!-- wp:paragraph -->\n" +
	"\t\t<p><strong>Middle</strong></p>\n" +
	"\t\t<!-- /wp:paragraph -->\n" +
	"\t</div>\n" +
	"\t<!-- /wp:column -->\n" +
	"\n" +
	"\t<!-- wp:column -->\n" +
	"\t<div class=\"wp-block-column\"></div>\n" +
	"\t<!-- /wp:column -->\n" +
	"</div>\n" +
	"<!-- /wp:columns -->"

func TestParseColumns(t *testing.T) {
	bs := Parse(columns)
	want := []shape{{
		Name:  "core/columns",
		Attrs: map[string]any{"columns": float64(3)},
		Children: []shape{
			{Name: "core/column", Children: []shape{{Name: "core/paragraph"}}},
			{Name: "core/column", Children: []shape{{Name: "core/paragraph"}}},
			{Name: "core/column"},
		},
	}}
	if diff := cmp.Diff(want, shapes(bs)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	cols := bs[0]
	if got, want := cols.InnerHTML(), "\n<div class=\"wp-block-columns has-3-columns\">\n\t\n\n\t\n\n\t\n</div>\n"; got != want {
		t.Errorf("columns inner html %q want %q", got, want)
	}
	col := cols.Children[0]
	if got, want := col.InnerHTML(), "\n\t<div class=\"wp-block-column\">\n\t\t\n\t</div>\n\t"; got != want {
		t.Errorf("column inner html %q want %q", got, want)
	}
	if got, want := col.Children[0].InnerHTML(), "\n\t\t<p>Left</p>\n\t\t"; got != want {
		t.Errorf("paragraph inner html %q want %q", got, want)
	}
	ic := col.InnerContent()
	if len(ic) != 3 || ic[1] != nil || *ic[0] != "\n\t<div class=\"wp-block-column\">\n\t\t" || *ic[2] != "\n\t</div>\n\t" {
		t.Errorf("inner content %v", ic)
	}
	if block.Text(bs) != columns {
		t.Errorf("round trip")
	}
}

var roundTripDocs = []string{
	"",
	"plain",
	columns,
	`<!-- wp:a -->`,
	`<!-- /wp:a -->`,
	`<!-- wp:a -->x<!-- /wp:b -->`,
	`x<!-- wp:a {"k":"}"} -->y<!-- wp:b /-->z<!-- /wp:a -->w`,
	`<!-- wp:a {"a": --> <!-- wp:b {} /-->`,
	`<!-- wp:a --><!-- wp:b --><!-- wp:c -->`,
	`<!-- wp:a /--><!-- /wp:a --><!-- /wp:a -->tail`,
	"<!--\twp:ns/n\n{\"x\":[1,{\"y\":{}}]}\n/\n-->",
}

func TestRoundTrip(t *testing.T) {
	for _, doc := range roundTripDocs {
		checkRoundTrip(t, doc)
	}
}

// checkRoundTrip verifies reconstruction and the offset and segment
// invariants of every block.
func checkRoundTrip(t *testing.T, doc string) {
	t.Helper()
	bs := Parse(doc, ParseKeepStrayClosers(true))
	if got := block.Text(bs); got != doc {
		t.Fatalf("round trip:\n got %q\nwant %q", got, doc)
	}

	var diags []Diagnostic
	bs = Parse(doc, ParseDiagnostics(&diags))
	stray := 0
	for _, d := range diags {
		if d.Kind == UnmatchedCloser {
			stray += d.End - d.Start
		}
	}
	if got := block.Text(bs); len(got) != len(doc)-stray {
		t.Fatalf("dropped %d bytes, stray closers span %d", len(doc)-len(got), stray)
	}
	if stray == 0 && block.Text(bs) != doc {
		t.Fatalf("round trip without stray closers")
	}

	block.Walk(bs, func(p block.Path, b *block.Block) bool {
		if b.Start < 0 || b.Start > b.End || b.End > len(doc) {
			t.Fatalf("%s: span [%d,%d) out of [0,%d]", p, b.Start, b.End, len(doc))
		}
		if doc[b.Start:b.End] != b.Raw {
			t.Fatalf("%s: raw %q is not doc[%d:%d]", p, b.Raw, b.Start, b.End)
		}
		if len(b.Segments) != len(b.Children)+1 {
			t.Fatalf("%s: %d segments for %d children", p, len(b.Segments), len(b.Children))
		}
		if b.Text() != b.Raw {
			t.Fatalf("%s: text %q != raw %q", p, b.Text(), b.Raw)
		}
		if b.IsFreeform() && (b.Attrs != nil || len(b.Children) != 0 || b.Raw == "") {
			t.Fatalf("%s: bad freeform block %+v", p, b)
		}
		return true
	})
}
