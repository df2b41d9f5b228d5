package lessons

import (
	"fmt"
	"io"
)

// Maps builds a small set-like map and prints it.
func Maps(w io.Writer) {
	m := make(map[string]struct{})
	m["test1"] = struct{}{}
	m["test2"] = struct{}{}
	// fmt prints map keys sorted
	fmt.Fprintln(w, "map:", m)
}
