package query

import (
	"fmt"

	"github.com/signadot/blockdoc/block"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is what an expression is evaluated against.
type Env struct {
	Name         string         `expr:"name"`
	Namespace    string         `expr:"namespace"`
	Attrs        map[string]any `expr:"attrs"`
	Freeform     bool           `expr:"freeform"`
	Void         bool           `expr:"void"`
	Unterminated bool           `expr:"unterminated"`
	Depth        int            `expr:"depth"`
	Children     int            `expr:"children"`
	Path         string         `expr:"path"`
	HTML         string         `expr:"html"`
	Text         string         `expr:"text"`
}

func NewEnv(p block.Path, b *block.Block) Env {
	return Env{
		Name:         b.Name,
		Namespace:    b.Namespace(),
		Attrs:        b.Attrs,
		Freeform:     b.IsFreeform(),
		Void:         b.Void,
		Unterminated: b.Unterminated,
		Depth:        max(0, len(p)-1),
		Children:     len(b.Children),
		Path:         p.String(),
		HTML:         b.InnerHTML(),
		Text:         b.Raw,
	}
}

// Query is a compiled expression. It may be used from several goroutines.
type Query struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Match evaluates q on b as a top level block.
func (q *Query) Match(b *block.Block) (bool, error) {
	return q.MatchAt(block.Path{0}, b)
}

// MatchAt evaluates q on b found at p.
func (q *Query) MatchAt(p block.Path, b *block.Block) (bool, error) {
	res, err := expr.Run(q.prg, NewEnv(p, b))
	if err != nil {
		return false, fmt.Errorf("error evaluating %q at %s: %w", q.src, p, err)
	}
	v, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T", ErrQuery, q.src, res)
	}
	return v, nil
}

type Result struct {
	Path  block.Path
	Block *block.Block
}

// Find returns the blocks matching q in document order.
func Find(blocks []*block.Block, q *Query) ([]Result, error) {
	var (
		res []Result
		err error
	)
	block.Walk(blocks, func(p block.Path, b *block.Block) bool {
		if err != nil {
			return false
		}
		var ok bool
		ok, err = q.MatchAt(p, b)
		if ok {
			res = append(res, Result{Path: append(block.Path(nil), p...), Block: b})
		}
		return err == nil
	})
	return res, err
}
