package ingest

import (
	_ "embed"
	"iter"
	"strings"
)

// PenguinData is the fixed source block read by the sample lesson.
// The first line is a header; one record per following line.
//
//go:embed penguins.csv
var PenguinData string

// Lines lazily splits block on '\n', yielding each line with its zero-based
// index. A trailing '\r' is dropped and a trailing newline does not start an
// extra empty line.
func Lines(block string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		for line := range strings.Lines(block) {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !yield(i, line) {
				return
			}
			i++
		}
	}
}
