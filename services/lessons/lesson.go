// Package lessons holds the language-feature demonstrations. Each lesson
// writes a short, linear example to w and keeps no state between runs.
package lessons

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// SampleName is the lesson that runs the record line parser.
const SampleName = "sample"

var ErrUnknownLesson = errors.New("unknown lesson")

type Lesson struct {
	Name    string
	Summary string
	Run     func(w io.Writer)
}

// catalog is in canonical run order.
var catalog = []Lesson{
	{Name: "greet", Summary: "UTF-8 string literals", Run: Greet},
	{Name: SampleName, Summary: "parse name,length records", Run: Sample},
	{Name: "variables", Summary: "rebinding, multiple assignment, shadowing", Run: Variables},
	{Name: "types", Summary: "numeric types and float rounding", Run: Types},
	{Name: "ranges", Summary: "counted loops over ints and runes", Run: Ranges},
	{Name: "complex", Summary: "complex128 arithmetic", Run: Complex},
	{Name: "chars", Summary: "rune size and UTF-8 width", Run: Chars},
	{Name: "maps", Summary: "map insert and print", Run: Maps},
	{Name: "strings", Summary: "string values and builders", Run: Strings},
	{Name: "references", Summary: "shared and exclusive pointers", Run: References},
	{Name: "ownership", Summary: "value copies versus hand-off", Run: Ownership},
}

// All returns every lesson in canonical order.
func All() []Lesson {
	out := make([]Lesson, len(catalog))
	copy(out, catalog)
	return out
}

func Names() []string {
	names := make([]string, len(catalog))
	for i, l := range catalog {
		names[i] = l.Name
	}
	return names
}

func Lookup(name string) (Lesson, bool) {
	for _, l := range catalog {
		if l.Name == name {
			return l, true
		}
	}
	return Lesson{}, false
}

// Select resolves names in the order given. No names selects All().
func Select(names []string) ([]Lesson, error) {
	if len(names) == 0 {
		return All(), nil
	}
	out := make([]Lesson, 0, len(names))
	for _, n := range names {
		l, ok := Lookup(n)
		if !ok {
			return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownLesson, n, strings.Join(Names(), ", "))
		}
		out = append(out, l)
	}
	return out, nil
}
