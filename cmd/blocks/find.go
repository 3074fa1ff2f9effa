package main

import (
	"fmt"
	"io"

	"github.com/signadot/blockdoc/query"
	"github.com/signadot/blockdoc/token"

	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runFind(cfg, cc.In, cc.Out, args)
}

// runFind writes the matches of args[0] in the files args[1:], failing
// with exit code 1 when there are none.
func runFind(cfg *FindConfig, stdin io.Reader, out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires one argument, an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	args = args[1:]
	multi := len(args) > 1
	total := 0
	err = eachInput(stdin, args, cfg.parseOpts(), func(_ int, in *input) error {
		res, err := query.Find(in.blocks, q)
		if err != nil {
			return err
		}
		total += len(res)
		if cfg.Count {
			return nil
		}
		pd := token.NewPosDoc(in.doc)
		prefix := ""
		if multi {
			prefix = in.name + ":"
		}
		for _, r := range res {
			if err := writeEntry(out, prefix, pd, r.Path, r.Block); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if cfg.Count {
		fmt.Fprintf(out, "%d\n", total)
	}
	if total == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
