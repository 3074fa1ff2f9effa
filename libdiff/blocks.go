package libdiff

import (
	"github.com/signadot/blockdoc/block"

	"github.com/segmentio/encoding/json"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	// Changed pairs blocks with the same name and attributes whose text
	// differs.
	Changed
	Insert
	Delete
)

func (o Op) String() string {
	return map[Op]string{
		Equal:   " ",
		Changed: "~",
		Insert:  "+",
		Delete:  "-",
	}[o]
}

// Edit is one step turning the from sequence into the to sequence. From
// is nil for an Insert and To is nil for a Delete.
type Edit struct {
	Op       Op
	From, To *block.Block
}

// Blocks aligns two sequences of sibling blocks.
//
// Each block is summarized by its name and attributes and the summaries
// are mapped to runes, so that aligning the sequences is a rune diff.
// Aligned blocks whose text differs are reported as Changed.
func Blocks(from, to []*block.Block) []Edit {
	m := map[string]rune{}
	fromRunes := summaries(m, from)
	toRunes := summaries(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var res []Edit
	fi, ti := 0, 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Edit{Op: Delete, From: from[fi]})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				res = append(res, Edit{Op: Insert, To: to[ti]})
				ti++
			}
		case diffpatch.DiffEqual:
			for range n {
				op := Equal
				if from[fi].Raw != to[ti].Raw {
					op = Changed
				}
				res = append(res, Edit{Op: op, From: from[fi], To: to[ti]})
				fi++
				ti++
			}
		}
	}
	return res
}

// Differs reports whether any edit is not Equal.
func Differs(edits []Edit) bool {
	for _, e := range edits {
		if e.Op != Equal {
			return true
		}
	}
	return false
}

func summaries(m map[string]rune, blocks []*block.Block) []rune {
	res := make([]rune, len(blocks))
	for i, b := range blocks {
		s := summary(b)
		r, ok := m[s]
		if !ok {
			// stay clear of the surrogate range
			r = rune(0xe000 + len(m))
			m[s] = r
		}
		res[i] = r
	}
	return res
}

func summary(b *block.Block) string {
	if b.IsFreeform() {
		return "#text"
	}
	d, _ := json.Marshal(b.Attrs)
	return b.Name + " " + string(d)
}
