package block

import "strings"

// Text reconstructs the document from a parse result.
func Text(blocks []*Block) string {
	buf := &strings.Builder{}
	for _, b := range blocks {
		b.writeText(buf)
	}
	return buf.String()
}

// Text reconstructs Raw from the segments and the children's own
// reconstructions.
func (b *Block) Text() string {
	buf := &strings.Builder{}
	b.writeText(buf)
	return buf.String()
}

func (b *Block) writeText(buf *strings.Builder) {
	type item struct {
		b *Block
		i int
	}
	stack := []item{{b: b}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		segs := top.b.segments()
		if top.i < len(segs) {
			buf.WriteString(segs[top.i])
		}
		if top.i < len(top.b.Children) {
			c := top.b.Children[top.i]
			top.i++
			stack = append(stack, item{b: c})
			continue
		}
		stack = stack[:len(stack)-1]
	}
}

// inner returns the segments with the delimiters removed.
func (b *Block) inner() []string {
	segs := append([]string(nil), b.segments()...)
	if b.IsFreeform() || len(segs) == 0 {
		return segs
	}
	segs[0] = strings.TrimPrefix(segs[0], b.Opener)
	n := len(segs) - 1
	segs[n] = strings.TrimSuffix(segs[n], b.Closer)
	return segs
}

// InnerHTML is the text between the opener and the closer without the
// children. For freeform blocks it is the text itself.
func (b *Block) InnerHTML() string {
	return strings.Join(b.inner(), "")
}

// InnerContent lists the non-empty inner HTML chunks with a nil entry
// where each child goes.
func (b *Block) InnerContent() []*string {
	res := []*string{}
	for i, s := range b.inner() {
		if s != "" {
			res = append(res, &s)
		}
		if i < len(b.Children) {
			res = append(res, nil)
		}
	}
	return res
}
