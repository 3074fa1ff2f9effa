package main

import (
	"fmt"

	"github.com/signadot/blockdoc/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachInput(cc.In, args, cfg.parseOpts(), func(i int, in *input) error {
		if err := encode.Encode(in.blocks, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		return nil
	})
}
