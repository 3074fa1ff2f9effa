package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/segmentio/encoding/json"
)

// Logf writes a debug line to stderr. Attribute maps and slices are
// rendered as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

// LogAny writes v to stderr as one line of JSON.
func LogAny(v any) {
	writeAny(os.Stderr, v)
}

func writeAny(w io.Writer, v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(w, "%v\n", v)
		return
	}
	w.Write(append(d, '\n'))
}
