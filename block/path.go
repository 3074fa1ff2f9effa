package block

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a block by child indices from the top level, written
// $[0][2][1].
type Path []int

func (p Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for _, i := range p {
		fmt.Fprintf(buf, "[%d]", i)
	}
	return buf.String()
}

func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

func ParsePath(s string) (Path, error) {
	if len(s) == 0 || s[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrBadPath, s)
	}
	rest := s[1:]
	res := Path{}
	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("%w: %q: expected '[' at %q", ErrBadPath, s, rest)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("%w: %q: unterminated index", ErrBadPath, s)
		}
		i, err := strconv.Atoi(rest[1:end])
		if err != nil || i < 0 {
			return nil, fmt.Errorf("%w: %q: bad index %q", ErrBadPath, s, rest[1:end])
		}
		res = append(res, i)
		rest = rest[end+1:]
	}
	return res, nil
}

// Get returns the block at p.
func Get(blocks []*Block, p Path) (*Block, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrBadPath)
	}
	var b *Block
	list := blocks
	for depth, i := range p {
		if i < 0 || i >= len(list) {
			return nil, fmt.Errorf("%w at %s", ErrNoSuchBlock, p[:depth+1])
		}
		b = list[i]
		list = b.Children
	}
	return b, nil
}
