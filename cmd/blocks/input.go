package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/blockdoc/block"
	"github.com/signadot/blockdoc/parse"
)

// input is a parsed document.
type input struct {
	name   string
	doc    string
	blocks []*block.Block
	diags  []parse.Diagnostic
}

func readDoc(stdin io.Reader, path string) (string, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	} else {
		r = stdin
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %q: %w", path, err)
	}
	return string(d), nil
}

func loadInput(stdin io.Reader, path string, opts ...parse.ParseOption) (*input, error) {
	doc, err := readDoc(stdin, path)
	if err != nil {
		return nil, err
	}
	in := &input{name: path, doc: doc}
	opts = append(opts, parse.ParseDiagnostics(&in.diags))
	in.blocks = parse.Parse(doc, opts...)
	return in, nil
}

// eachInput loads every file of args, or stdin when there are none.
func eachInput(stdin io.Reader, args []string, opts []parse.ParseOption, f func(int, *input) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		in, err := loadInput(stdin, arg, opts...)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", arg, err)
		}
		if err := f(i, in); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
	}
	return nil
}
