package batch

import (
	"bytes"
	"fmt"
	"io"

	"github.com/lox/tenpin/internal/fileutil"
)

// FormatReport renders one line per result:
//
//	line 3: 190 complete
//	line 4: 46 in progress
//	line 7: rejected: game: frame overflow (frame 2): frame total 12 exceeds 10 pins
func FormatReport(results []Result) []byte {
	var buf bytes.Buffer
	_ = writeReport(&buf, results)
	return buf.Bytes()
}

func writeReport(w io.Writer, results []Result) error {
	for _, r := range results {
		var err error
		switch {
		case r.Err != nil:
			_, err = fmt.Fprintf(w, "line %d: rejected: %v\n", r.Line.Number, r.Err)
		case r.Complete:
			_, err = fmt.Fprintf(w, "line %d: %d complete\n", r.Line.Number, r.Score)
		default:
			_, err = fmt.Fprintf(w, "line %d: %d in progress\n", r.Line.Number, r.Score)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteReport writes the report for results to path. The file is written to a
// temporary sibling and renamed into place, so readers see either the old
// report or the whole new one.
func WriteReport(path string, results []Result) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return writeReport(w, results)
	})
}
