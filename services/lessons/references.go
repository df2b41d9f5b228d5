package lessons

import (
	"fmt"
	"io"
)

// References reads a string through two pointers, then writes through a third.
func References(w io.Writer) {
	s := "hello"

	r1 := &s
	r2 := &s
	fmt.Fprintf(w, "%s and %s\n", *r1, *r2)

	// readers are done; a single writer takes over
	r3 := &s
	*r3 += ", world"
	fmt.Fprintln(w, *r3)
	fmt.Fprintf(w, "r1 sees the write: %v\n", *r1 == s)
}
