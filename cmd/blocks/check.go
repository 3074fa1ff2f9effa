package main

import (
	"fmt"
	"io"

	"github.com/signadot/blockdoc/block"
	"github.com/signadot/blockdoc/libdiff"
	"github.com/signadot/blockdoc/parse"
	"github.com/signadot/blockdoc/token"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runCheck(cfg, cc.In, cc.Out, args)
}

// runCheck reports each document and fails with exit code 1 when one
// does not reconstruct, or has diagnostics under -strict-diags.
func runCheck(cfg *CheckConfig, stdin io.Reader, out io.Writer, args []string) error {
	// stray closers are kept so that every byte must come back
	opts := append(cfg.parseOpts(), parse.ParseKeepStrayClosers(true))
	failed := 0
	err := eachInput(stdin, args, opts, func(_ int, in *input) error {
		if !cfg.checkInput(out, in) {
			failed++
		}
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkInput reports one document, returning false when it fails.
func (cfg *CheckConfig) checkInput(out io.Writer, in *input) bool {
	ok := true
	if m := libdiff.RoundTrip(in.doc, in.blocks); m != nil {
		ok = false
		fmt.Fprintf(out, "%s: %s", in.name, m)
	}
	if len(in.diags) > 0 && cfg.StrictDiags {
		ok = false
	}
	if !cfg.Quiet {
		pd := token.NewPosDoc(in.doc)
		for i := range in.diags {
			d := &in.diags[i]
			l, c := pd.LineCol(d.Start)
			fmt.Fprintf(out, "%s:%d:%d: %s\n", in.name, l+1, c+1, d)
		}
	}
	if ok {
		fmt.Fprintf(out, "%s: ok (%d blocks, %d diagnostics)\n", in.name, block.Count(in.blocks), len(in.diags))
	}
	return ok
}
