package token

import (
	"strings"
	"testing"
)

func TestPosDoc(t *testing.T) {
	doc := "ab\ncd\n\nef"
	pd := NewPosDoc(doc)
	tests := []struct {
		off, line, col int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{4, 1, 1},
		{6, 2, 0},
		{7, 3, 0},
		{9, 3, 2},
		{100, 3, 2},
	}
	for _, tt := range tests {
		l, c := pd.LineCol(tt.off)
		if l != tt.line || c != tt.col {
			t.Errorf("LineCol(%d) = %d,%d want %d,%d", tt.off, l, c, tt.line, tt.col)
		}
		if tt.off > len(doc) {
			continue
		}
		if off := pd.Offset(tt.line, tt.col); off != tt.off {
			t.Errorf("Offset(%d,%d) = %d want %d", tt.line, tt.col, off, tt.off)
		}
	}
	if n := pd.Lines(); n != 4 {
		t.Errorf("Lines() = %d", n)
	}
	if off := pd.Offset(0, 50); off != 2 {
		t.Errorf("Offset clamps to line end, got %d", off)
	}
	s := pd.Pos(4).String()
	if !strings.Contains(s, "line=1, col=1") {
		t.Errorf("unexpected %q", s)
	}
}
