package lessons

import (
	"fmt"
	"io"
)

// Ranges prints a half-open and a closed integer loop, then a to z.
func Ranges(w io.Writer) {
	// half-open
	for i := 1; i < 5; i++ {
		fmt.Fprintln(w, i)
	}
	// closed
	for i := 1; i <= 5; i++ {
		fmt.Fprintln(w, i)
	}
	for c := 'a'; c <= 'z'; c++ {
		fmt.Fprintln(w, string(c))
	}
}
