package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets of a document to zero based line and column.
type PosDoc struct {
	d string
	n []int
}

func NewPosDoc(doc string) *PosDoc {
	p := &PosDoc{d: doc}
	for i := 0; i < len(doc); i++ {
		if doc[i] == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

func (p *PosDoc) LineCol(off int) (int, int) {
	off = max(0, min(off, len(p.d)))
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

// Offset is the inverse of LineCol. Positions past the end of a line
// clamp to the line end.
func (p *PosDoc) Offset(line, col int) int {
	if line <= 0 {
		return max(0, min(col, p.lineEnd(0)))
	}
	if line > len(p.n) {
		return len(p.d)
	}
	start := p.n[line-1] + 1
	return max(start, min(start+col, p.lineEnd(line)))
}

func (p *PosDoc) lineEnd(line int) int {
	if line < len(p.n) {
		return p.n[line]
	}
	return len(p.d)
}

func (p *PosDoc) Lines() int {
	return len(p.n) + 1
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, p.I
	}
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil && len(p.D.d) > 0 {
		i := max(0, min(p.I, len(p.D.d)))
		sample = p.D.d[max(0, i-5):min(i+5, len(p.D.d))]
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
