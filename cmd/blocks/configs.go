package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/blockdoc/encode"
	"github.com/signadot/blockdoc/format"
	"github.com/signadot/blockdoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color     bool   `cli:"name=color desc='encode with color'"`
	Indent    bool   `cli:"name=i aliases=indent desc='indent json output'"`
	Keyword   string `cli:"name=k aliases=keyword desc='delimiter keyword (default wp:)'"`
	Namespace string `cli:"name=ns aliases=namespace desc='namespace of names written without one (default core/)'"`
	Strict    bool   `cli:"name=strict desc='ignore closers which do not match the open block'"`
	KeepStray bool   `cli:"name=keep desc='keep closers without an open block as text'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// optSet reports whether the main option name was given on the command
// line, so that an explicit empty value can be told from the default.
func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseStrictClosers(cfg.Strict),
		parse.ParseKeepStrayClosers(cfg.KeepStray),
	}
	if cfg.Keyword != "" {
		res = append(res, parse.ParseKeyword(cfg.Keyword))
	}
	if cfg.Namespace != "" || cfg.optSet("ns") {
		res = append(res, parse.ParseNamespace(cfg.Namespace))
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeIndent(cfg.Indent),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.optSet("color") {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ListConfig struct {
	*MainConfig

	Text bool `cli:"name=text desc='include freeform text'"`

	List *cli.Command
}

type GetConfig struct {
	*MainConfig

	Raw bool `cli:"name=raw desc='print the document text of the block'"`

	Get *cli.Command
}

type FindConfig struct {
	*MainConfig

	Count bool `cli:"name=c aliases=count desc='print only the number of matches'"`

	Find *cli.Command
}

type CheckConfig struct {
	*MainConfig

	StrictDiags bool `cli:"name=strict-diags desc='fail when the parser recovered from anything'"`
	Quiet       bool `cli:"name=q desc='do not print diagnostics'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Patch bool `cli:"name=patch desc='print a JSON merge patch keyed by block path'"`
	Text  bool `cli:"name=text desc='print a line diff of the documents'"`

	Diff *cli.Command
}
