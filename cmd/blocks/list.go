package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/blockdoc/block"
	"github.com/signadot/blockdoc/token"

	"github.com/scott-cotton/cli"
	"github.com/segmentio/encoding/json"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	multi := len(args) > 1
	return eachInput(cc.In, args, cfg.parseOpts(), func(_ int, in *input) error {
		pd := token.NewPosDoc(in.doc)
		var err error
		block.Walk(in.blocks, func(p block.Path, b *block.Block) bool {
			if err != nil {
				return false
			}
			if b.IsFreeform() && !cfg.Text {
				return true
			}
			prefix := ""
			if multi {
				prefix = in.name + ":"
			}
			err = writeEntry(cc.Out, prefix, pd, p, b)
			return true
		})
		return err
	})
}

// writeEntry writes a tab separated line: path, line:col, name and
// attributes. Freeform text shows as #text with its length.
func writeEntry(w io.Writer, prefix string, pd *token.PosDoc, p block.Path, b *block.Block) error {
	l, c := pd.LineCol(b.Start)
	fields := []string{prefix + p.String(), fmt.Sprintf("%d:%d", l+1, c+1)}
	switch {
	case b.IsFreeform():
		fields = append(fields, "#text", fmt.Sprintf("%d bytes", len(b.Raw)))
	default:
		fields = append(fields, b.Name)
		if b.Attrs != nil {
			d, err := json.Marshal(b.Attrs)
			if err != nil {
				return err
			}
			fields = append(fields, string(d))
		}
	}
	_, err := io.WriteString(w, strings.Join(fields, "\t")+"\n")
	return err
}
