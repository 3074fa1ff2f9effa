package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/blockdoc/block"
	"github.com/signadot/blockdoc/libdiff"

	"github.com/scott-cotton/cli"
	"github.com/segmentio/encoding/json"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runDiff(cfg, cc.In, cc.Out, args)
}

// runDiff compares the documents args[0] and args[1], failing with exit
// code 1 when they differ.
func runDiff(cfg *DiffConfig, stdin io.Reader, out io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Patch && cfg.Text {
		return fmt.Errorf("%w: -patch and -text do not combine", cli.ErrUsage)
	}
	a, err := loadInput(stdin, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[0], err)
	}
	b, err := loadInput(stdin, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[1], err)
	}
	var differs bool
	switch {
	case cfg.Text:
		d := libdiff.TextDiff(a.doc, b.doc)
		differs = d != ""
		_, err = io.WriteString(out, d)
	case cfg.Patch:
		differs, err = diffPatch(cfg, out, a.blocks, b.blocks)
	default:
		edits := libdiff.Blocks(a.blocks, b.blocks)
		differs = libdiff.Differs(edits)
		err = writeEdits(out, edits)
	}
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffPatch(cfg *DiffConfig, w io.Writer, a, b []*block.Block) (bool, error) {
	patch, err := libdiff.Patch(a, b)
	if err != nil {
		return false, err
	}
	if string(patch) == "{}" {
		return false, nil
	}
	if cfg.Indent {
		buf := &bytes.Buffer{}
		if err := json.Indent(buf, patch, "", "  "); err != nil {
			return false, err
		}
		patch = buf.Bytes()
	}
	_, err = w.Write(append(patch, '\n'))
	return true, err
}

// writeEdits writes one line per top level block that differs, with the
// index in the document it comes from.
func writeEdits(w io.Writer, edits []libdiff.Edit) error {
	fi, ti := 0, 0
	for _, e := range edits {
		var line string
		switch e.Op {
		case libdiff.Delete:
			line = fmt.Sprintf("%s a%s %s", e.Op, block.Path{fi}, label(e.From))
			fi++
		case libdiff.Insert:
			line = fmt.Sprintf("%s b%s %s", e.Op, block.Path{ti}, label(e.To))
			ti++
		case libdiff.Changed:
			line = fmt.Sprintf("%s a%s b%s %s", e.Op, block.Path{fi}, block.Path{ti}, label(e.To))
			fi++
			ti++
		default:
			fi++
			ti++
			continue
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func label(b *block.Block) string {
	if b.IsFreeform() {
		return "#text " + strconv.Itoa(len(b.Raw)) + " bytes"
	}
	return b.Name
}
