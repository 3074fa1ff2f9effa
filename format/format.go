// Package format names the output encodings of a parse result.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	// JSONFormat is {"name", "attributes", "children", "innerContent"}.
	JSONFormat Format = iota
	// WPFormat is the WordPress block parser output shape.
	WPFormat
	YAMLFormat
	// TreeFormat is an indented outline for terminals.
	TreeFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"w":    WPFormat,
		"wp":   WPFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"t":    TreeFormat,
		"tree": TreeFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case WPFormat:
		return []byte("wp"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case TreeFormat:
		return []byte("tree"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsJSON reports whether f is encoded as JSON.
func (f Format) IsJSON() bool { return f == JSONFormat || f == WPFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }
func (f Format) IsTree() bool { return f == TreeFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat, WPFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case TreeFormat:
		return ".txt"
	default:
		return ""
	}
}

func AllFormats() []Format {
	return []Format{JSONFormat, WPFormat, YAMLFormat, TreeFormat}
}
