package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/blockdoc/token"
)

var (
	ErrUnmatchedCloser  = errors.New("closer without opener")
	ErrMismatchedCloser = errors.New("closer does not match open block")
	ErrUnterminated     = errors.New("unterminated block")
	ErrBadAttrs         = errors.New("attributes are not a JSON object")
)

type DiagKind int

const (
	UnmatchedCloser DiagKind = iota
	MismatchedCloser
	Unterminated
	BadAttrs
)

func (k DiagKind) String() string {
	return map[DiagKind]string{
		UnmatchedCloser:  "unmatched-closer",
		MismatchedCloser: "mismatched-closer",
		Unterminated:     "unterminated",
		BadAttrs:         "bad-attrs",
	}[k]
}

func (k DiagKind) err() error {
	return map[DiagKind]error{
		UnmatchedCloser:  ErrUnmatchedCloser,
		MismatchedCloser: ErrMismatchedCloser,
		Unterminated:     ErrUnterminated,
		BadAttrs:         ErrBadAttrs,
	}[k]
}

// Diagnostic records a condition the parser recovered from. Start and
// End delimit the delimiter concerned.
type Diagnostic struct {
	Kind  DiagKind
	Name  string
	Start int
	End   int

	// Open is the name of the open block a mismatched closer met.
	Open string
}

func (d *Diagnostic) Unwrap() error {
	return d.Kind.err()
}

func (d *Diagnostic) Error() string {
	return d.describe(fmt.Sprintf("[%d,%d)", d.Start, d.End))
}

// At formats the diagnostic with the line and column of its start.
func (d *Diagnostic) At(pd *token.PosDoc) string {
	return d.describe(pd.Pos(d.Start).String())
}

func (d *Diagnostic) describe(where string) string {
	if d.Kind == MismatchedCloser {
		return fmt.Sprintf("%s: %s closing %s at %s", d.Kind.err(), d.Name, d.Open, where)
	}
	return fmt.Sprintf("%s: %s at %s", d.Kind.err(), d.Name, where)
}
