package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/blockdoc/block"
	"github.com/signadot/blockdoc/format"
	"github.com/signadot/blockdoc/token"

	"github.com/goccy/go-yaml"
	"github.com/segmentio/encoding/json"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format format.Format
	pretty bool
	pos    *token.PosDoc
	width  int

	Color func(ColorAttr, string) string
}

func Encode(blocks []*block.Block, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{width: 40}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		if blocks == nil {
			blocks = []*block.Block{}
		}
		return encodeJSON(blocks, w, es)
	case format.WPFormat:
		return encodeJSON(toWP(blocks), w, es)
	case format.YAMLFormat:
		return encodeYAML(toYAML(blocks), w)
	case format.TreeFormat:
		return encodeTree(blocks, w, es)
	default:
		return fmt.Errorf("%w: unknown format %s", ErrEncoding, es.format)
	}
}

// EncodeBlock encodes a single block as an object rather than a list.
func EncodeBlock(b *block.Block, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{width: 40}
	for _, opt := range opts {
		opt(es)
	}
	one := []*block.Block{b}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(b, w, es)
	case format.WPFormat:
		return encodeJSON(toWP(one)[0], w, es)
	case format.YAMLFormat:
		return encodeYAML(toYAML(one)[0], w)
	case format.TreeFormat:
		return encodeTree(one, w, es)
	default:
		return fmt.Errorf("%w: unknown format %s", ErrEncoding, es.format)
	}
}

func encodeJSON(v any, w io.Writer, es *EncState) error {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if es.pretty {
		buf := &bytes.Buffer{}
		if err := json.Indent(buf, d, "", "  "); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		d = buf.Bytes()
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// wpBlock is the shape produced by the WordPress block parsers.
type wpBlock struct {
	BlockName    *string        `json:"blockName"`
	Attrs        map[string]any `json:"attrs"`
	InnerBlocks  []*wpBlock     `json:"innerBlocks"`
	InnerHTML    string         `json:"innerHTML"`
	InnerContent []*string      `json:"innerContent"`
}

func toWP(blocks []*block.Block) []*wpBlock {
	res := make([]*wpBlock, 0, len(blocks))
	for _, b := range blocks {
		wb := &wpBlock{
			Attrs:        b.Attrs,
			InnerBlocks:  toWP(b.Children),
			InnerHTML:    b.InnerHTML(),
			InnerContent: b.InnerContent(),
		}
		if !b.IsFreeform() {
			name := b.Name
			wb.BlockName = &name
		}
		if wb.Attrs == nil {
			wb.Attrs = map[string]any{}
		}
		res = append(res, wb)
	}
	return res
}

func encodeYAML(v any, w io.Writer) error {
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

func toYAML(blocks []*block.Block) []yaml.MapSlice {
	res := make([]yaml.MapSlice, 0, len(blocks))
	for _, b := range blocks {
		var name any
		if !b.IsFreeform() {
			name = b.Name
		}
		var attrs any
		if b.Attrs != nil {
			attrs = b.Attrs
		}
		res = append(res, yaml.MapSlice{
			{Key: "name", Value: name},
			{Key: "attributes", Value: attrs},
			{Key: "children", Value: toYAML(b.Children)},
			{Key: "innerContent", Value: b.InnerHTML()},
		})
	}
	return res
}

func encodeTree(blocks []*block.Block, w io.Writer, es *EncState) error {
	var err error
	block.Walk(blocks, func(p block.Path, b *block.Block) bool {
		if err != nil {
			return false
		}
		err = writeString(w, treeLine(p, b, es)+"\n")
		return true
	})
	return err
}

func treeLine(p block.Path, b *block.Block, es *EncState) string {
	buf := &strings.Builder{}
	buf.WriteString(strings.Repeat("  ", len(p)-1))
	if es.pos != nil {
		l, c := es.pos.LineCol(b.Start)
		buf.WriteString(es.color(PosColor, fmt.Sprintf("%d:%d", l+1, c+1)))
		buf.WriteByte(' ')
	}
	if b.IsFreeform() {
		buf.WriteString(es.color(MarkColor, "#text"))
		buf.WriteByte(' ')
		buf.WriteString(es.color(TextColor, sample(b.Raw, es.width)))
		return buf.String()
	}
	if ns := b.Namespace(); ns != "" {
		buf.WriteString(es.color(NamespaceColor, ns+"/"))
		buf.WriteString(es.color(NameColor, b.Name[len(ns)+1:]))
	} else {
		buf.WriteString(es.color(NameColor, b.Name))
	}
	if b.Attrs != nil {
		d, err := json.Marshal(b.Attrs)
		if err == nil {
			buf.WriteByte(' ')
			buf.WriteString(es.color(AttrsColor, string(d)))
		}
	}
	if b.Void {
		buf.WriteString(es.color(MarkColor, " /"))
	}
	if b.Unterminated {
		buf.WriteString(es.color(MarkColor, " !unterminated"))
	}
	return buf.String()
}

// sample quotes s, cut to at most n bytes on a rune boundary.
func sample(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return strconv.Quote(s)
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return strconv.Quote(s[:n]) + "..."
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
