package main

import (
	"fmt"
	"io"

	"github.com/signadot/blockdoc/block"
	"github.com/signadot/blockdoc/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a block path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	p, err := block.ParsePath(path)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	return eachInput(cc.In, args[1:], cfg.parseOpts(), func(_ int, in *input) error {
		b, err := block.Get(in.blocks, p)
		if err != nil {
			return err
		}
		if cfg.Raw {
			_, err := io.WriteString(cc.Out, b.Raw+"\n")
			return err
		}
		return encode.EncodeBlock(b, cc.Out, opts...)
	})
}
