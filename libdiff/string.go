package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/blockdoc/block"
	"github.com/signadot/blockdoc/token"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// context lines kept around changes by TextDiff
const contextLines = 2

// TextDiff renders a line diff of from and to, prefixing removed lines
// with '-', added lines with '+' and kept lines with ' '. Long runs of
// kept lines are elided. It returns "" when from and to are equal.
func TextDiff(from, to string) string {
	if from == to {
		return ""
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	buf := &strings.Builder{}
	for i, d := range diffs {
		lns := splitLines(d.Text)
		switch d.Type {
		case diffpatch.DiffDelete:
			writeLines(buf, "-", lns)
		case diffpatch.DiffInsert:
			writeLines(buf, "+", lns)
		case diffpatch.DiffEqual:
			head, tail := contextLines, contextLines
			if i == 0 {
				head = 0
			}
			if i == len(diffs)-1 {
				tail = 0
			}
			if len(lns) <= head+tail+1 {
				writeLines(buf, " ", lns)
				continue
			}
			writeLines(buf, " ", lns[:head])
			fmt.Fprintf(buf, "@@ %d lines @@\n", len(lns)-head-tail)
			writeLines(buf, " ", lns[len(lns)-tail:])
		}
	}
	return buf.String()
}

func splitLines(s string) []string {
	res := strings.SplitAfter(s, "\n")
	if len(res) > 0 && res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	return res
}

func writeLines(buf *strings.Builder, prefix string, lns []string) {
	for _, ln := range lns {
		buf.WriteString(prefix)
		buf.WriteString(ln)
		if !strings.HasSuffix(ln, "\n") {
			buf.WriteString("\n")
		}
	}
}

// Mismatch describes where a reconstruction departs from its document.
type Mismatch struct {
	// Offset is the first byte where the two texts differ.
	Offset int
	Pos    *token.Pos
	Diff   string
}

func (m *Mismatch) String() string {
	return fmt.Sprintf("reconstruction differs at %s\n%s", m.Pos, m.Diff)
}

// RoundTrip checks that blocks reconstruct doc, returning nil when they
// do.
func RoundTrip(doc string, blocks []*block.Block) *Mismatch {
	got := block.Text(blocks)
	if got == doc {
		return nil
	}
	i := 0
	for i < len(doc) && i < len(got) && doc[i] == got[i] {
		i++
	}
	return &Mismatch{
		Offset: i,
		Pos:    token.NewPosDoc(doc).Pos(i),
		Diff:   TextDiff(doc, got),
	}
}
