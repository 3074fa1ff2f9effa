package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, wp/w, yaml/y, tree/t",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "blocks").
		WithSynopsis("blocks [opts] command [opts]").
		WithDescription("blocks is a tool for working with block delimited documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return blocksMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			ListCommand(cfg),
			GetCommand(cfg),
			FindCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("parse documents and encode the blocks").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [-text] [files]").
		WithDescription("list blocks with their path, position and attributes").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get [-raw] <blockpath> [files]").
		WithDescription("get the block at a path such as $[1][0]").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find [-c] <expr> [files]").
		WithDescription(findDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

const findDescription = `find lists the blocks for which an expression is true.

The expression is written in expr-lang and sees one block at a time:

  name          namespaced block name, "" for freeform text
  namespace     the part of name before the last '/'
  attrs         decoded attributes, nil when absent or malformed
  freeform      whether the block is text outside any delimiter
  void          whether the block is self closing
  unterminated  whether the document ended before the closer
  depth         nesting level, 0 at the top
  children      number of child blocks
  path          index path such as $[0][2]
  html          inner HTML
  text          the exact document text of the block

Examples

  find 'name == "core/image" && attrs?.id == nil' post.html
  find -c 'freeform && text contains "TODO"' *.html

find exits with status 1 when nothing matched.`

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-strict-diags] [-q] [files]").
		WithDescription("check that documents reconstruct from their blocks and report recovered conditions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-patch|-text] a b").
		WithDescription("compare the blocks of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
