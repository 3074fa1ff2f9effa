package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/blockdoc/block"
	"github.com/signadot/blockdoc/libdiff"
	"github.com/signadot/blockdoc/parse"
	"github.com/signadot/blockdoc/token"

	"github.com/scott-cotton/cli"
)

func TestWriteEntry(t *testing.T) {
	doc := "x\n<!-- wp:a {\"k\":1} --><!-- wp:b /--><!-- /wp:a -->"
	bs := parse.Parse(doc)
	pd := token.NewPosDoc(doc)
	buf := &bytes.Buffer{}
	block.Walk(bs, func(p block.Path, b *block.Block) bool {
		if err := writeEntry(buf, "f:", pd, p, b); err != nil {
			t.Fatal(err)
		}
		return true
	})
	want := "f:$[0]\t1:1\t#text\t2 bytes\n" +
		"f:$[1]\t2:1\tcore/a\t{\"k\":1}\n" +
		"f:$[1][0]\t2:21\tcore/b\n"
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteEdits(t *testing.T) {
	a := parse.Parse(`x<!-- wp:a /--><!-- wp:c -->1<!-- /wp:c -->`)
	b := parse.Parse(`x<!-- wp:c -->2<!-- /wp:c --><!-- wp:d /-->`)
	buf := &bytes.Buffer{}
	if err := writeEdits(buf, libdiff.Blocks(a, b)); err != nil {
		t.Fatal(err)
	}
	want := "- a$[1] core/a\n" +
		"~ a$[2] b$[1] core/c\n" +
		"+ b$[2] core/d\n"
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestParseOpts(t *testing.T) {
	cfg := &MainConfig{Keyword: "block:", Namespace: "x"}
	bs := parse.Parse(`<!-- block:a /-->`, cfg.parseOpts()...)
	if len(bs) != 1 || bs[0].Name != "x/a" {
		t.Fatalf("got %+v", bs)
	}
	cfg = &MainConfig{}
	bs = parse.Parse(`<!-- wp:a /-->`, cfg.parseOpts()...)
	if bs[0].Name != "core/a" {
		t.Errorf("got %q", bs[0].Name)
	}
}

func writeFiles(t *testing.T, docs ...string) []string {
	t.Helper()
	dir := t.TempDir()
	var res []string
	for i, d := range docs {
		p := filepath.Join(dir, string(rune('a'+i))+".html")
		if err := os.WriteFile(p, []byte(d), 0o644); err != nil {
			t.Fatal(err)
		}
		res = append(res, p)
	}
	return res
}

func checkExit(t *testing.T, err error, wantFail bool) {
	t.Helper()
	if wantFail {
		if !errors.Is(err, cli.ExitCodeErr(1)) {
			t.Errorf("expected exit code 1, got %v", err)
		}
		return
	}
	if err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestRunFind(t *testing.T) {
	files := writeFiles(t, "<!-- wp:a /-->", "x<!-- wp:b /--><!-- wp:a /-->")
	tests := []struct {
		name  string
		count bool
		stdin string
		args  []string
		want  string
		fail  bool
	}{
		{
			name:  "match on stdin",
			stdin: "x<!-- wp:a /-->",
			args:  []string{`name == "core/a"`},
			want:  "$[1]\t1:2\tcore/a\n",
		},
		{
			name:  "no match",
			stdin: "x<!-- wp:a /-->",
			args:  []string{`name == "core/z"`},
			fail:  true,
		},
		{
			name:  "count",
			count: true,
			stdin: "<!-- wp:a /--><!-- wp:a /-->",
			args:  []string{`name == "core/a"`},
			want:  "2\n",
		},
		{
			name:  "count without match",
			count: true,
			stdin: "text",
			args:  []string{`void`},
			want:  "0\n",
			fail:  true,
		},
		{
			name: "files are prefixed",
			args: []string{`name == "core/a"`, files[0], files[1]},
			want: files[0] + ":$[0]\t1:1\tcore/a\n" + files[1] + ":$[2]\t1:16\tcore/a\n",
		},
		{
			name: "match in one file of two",
			args: []string{`name == "core/b"`, files[0], files[1]},
			want: files[1] + ":$[1]\t1:2\tcore/b\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &FindConfig{MainConfig: &MainConfig{}, Count: tt.count}
			out := &bytes.Buffer{}
			err := runFind(cfg, strings.NewReader(tt.stdin), out, tt.args)
			checkExit(t, err, tt.fail)
			if out.String() != tt.want {
				t.Errorf("got %q want %q", out.String(), tt.want)
			}
		})
	}
}

func TestRunFindUsage(t *testing.T) {
	cfg := &FindConfig{MainConfig: &MainConfig{}}
	for _, args := range [][]string{nil, {`name ==`}} {
		err := runFind(cfg, strings.NewReader(""), &bytes.Buffer{}, args)
		if !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%q: expected usage error, got %v", args, err)
		}
	}
}

func TestRunCheck(t *testing.T) {
	tests := []struct {
		name        string
		strictDiags bool
		quiet       bool
		in          string
		want        []string
		notWant     []string
		fail        bool
	}{
		{
			name: "clean",
			in:   "<!-- wp:a -->x<!-- /wp:a -->",
			want: []string{"-: ok (1 blocks, 0 diagnostics)\n"},
		},
		{
			name: "diagnostics are reported",
			in:   "<!-- wp:a -->x",
			want: []string{"-:1:1: unterminated block: core/a", "-: ok (1 blocks, 1 diagnostics)\n"},
		},
		{
			name:        "diagnostics fail under strict-diags",
			strictDiags: true,
			in:          "<!-- wp:a -->x",
			want:        []string{"-:1:1: unterminated block"},
			notWant:     []string{"ok"},
			fail:        true,
		},
		{
			name:        "quiet",
			strictDiags: true,
			quiet:       true,
			in:          "x\n<!-- /wp:a -->",
			notWant:     []string{"closer without opener", "ok"},
			fail:        true,
		},
		{
			name: "stray closer kept as text",
			in:   "x\n<!-- /wp:a -->",
			want: []string{"-:2:1: closer without opener", "-: ok ("},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &CheckConfig{MainConfig: &MainConfig{}, StrictDiags: tt.strictDiags, Quiet: tt.quiet}
			out := &bytes.Buffer{}
			err := runCheck(cfg, strings.NewReader(tt.in), out, nil)
			checkExit(t, err, tt.fail)
			for _, w := range tt.want {
				if !strings.Contains(out.String(), w) {
					t.Errorf("output %q lacks %q", out.String(), w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out.String(), w) {
					t.Errorf("output %q has %q", out.String(), w)
				}
			}
		})
	}
}

func TestCheckInputMismatch(t *testing.T) {
	cfg := &CheckConfig{MainConfig: &MainConfig{}}
	in := &input{name: "f", doc: "ab\ncd", blocks: parse.Parse("ab\ncX")}
	out := &bytes.Buffer{}
	if cfg.checkInput(out, in) {
		t.Fatalf("expected failure, got %q", out.String())
	}
	if !strings.HasPrefix(out.String(), "f: reconstruction differs at ") {
		t.Errorf("got %q", out.String())
	}
	if strings.Contains(out.String(), "ok (") {
		t.Errorf("mismatch reported ok: %q", out.String())
	}
}

func TestRunDiff(t *testing.T) {
	files := writeFiles(t,
		"x<!-- wp:a /-->",
		"x<!-- wp:a /-->",
		"x<!-- wp:a /--><!-- wp:b /-->",
	)
	tests := []struct {
		name  string
		patch bool
		text  bool
		a, b  string
		want  string
		fail  bool
	}{
		{name: "equal", a: files[0], b: files[1]},
		{name: "equal text", text: true, a: files[0], b: files[1]},
		{name: "equal patch", patch: true, a: files[0], b: files[1]},
		{name: "insert", a: files[0], b: files[2], want: "+ b$[2] core/b\n", fail: true},
		{name: "text", text: true, a: files[0], b: files[2], fail: true},
		{name: "patch", patch: true, a: files[0], b: files[2], fail: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &DiffConfig{MainConfig: &MainConfig{}, Patch: tt.patch, Text: tt.text}
			out := &bytes.Buffer{}
			err := runDiff(cfg, strings.NewReader(""), out, []string{tt.a, tt.b})
			checkExit(t, err, tt.fail)
			switch {
			case !tt.fail && out.Len() != 0:
				t.Errorf("expected no output, got %q", out.String())
			case tt.want != "" && out.String() != tt.want:
				t.Errorf("got %q want %q", out.String(), tt.want)
			case tt.fail && out.Len() == 0:
				t.Errorf("expected output")
			}
		})
	}
}

func TestRunDiffUsage(t *testing.T) {
	cfg := &DiffConfig{MainConfig: &MainConfig{}}
	if err := runDiff(cfg, strings.NewReader(""), &bytes.Buffer{}, []string{"a"}); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("one arg: got %v", err)
	}
	cfg.Patch, cfg.Text = true, true
	if err := runDiff(cfg, strings.NewReader(""), &bytes.Buffer{}, []string{"a", "b"}); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("-patch -text: got %v", err)
	}
}

func TestMainConfigValidate(t *testing.T) {
	if err := (&MainConfig{Strict: true, KeepStray: true}).validate(); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("-strict -keep: got %v", err)
	}
	for _, cfg := range []*MainConfig{{}, {Strict: true}, {KeepStray: true}} {
		if err := cfg.validate(); err != nil {
			t.Errorf("%+v: %v", cfg, err)
		}
	}
}
