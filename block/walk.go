package block

// Walk visits blocks depth first in document order. The children of a
// block are skipped when f returns false. The Path passed to f is shared
// between calls; copy it to keep it.
func Walk(blocks []*Block, f func(Path, *Block) bool) {
	type level struct {
		list []*Block
		i    int
	}
	stack := []level{{list: blocks}}
	var path Path
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i >= len(top.list) {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				path = path[:len(path)-1]
			}
			continue
		}
		b := top.list[top.i]
		path = append(path, top.i)
		top.i++
		if f(path, b) && len(b.Children) > 0 {
			stack = append(stack, level{list: b.Children})
			continue
		}
		path = path[:len(path)-1]
	}
}

// Depth is the number of nesting levels, 0 for no blocks.
func Depth(blocks []*Block) int {
	d := 0
	Walk(blocks, func(p Path, _ *Block) bool {
		d = max(d, len(p))
		return true
	})
	return d
}

// Count returns the number of blocks, freeform included.
func Count(blocks []*Block) int {
	n := 0
	Walk(blocks, func(Path, *Block) bool {
		n++
		return true
	})
	return n
}
