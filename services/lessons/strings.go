package lessons

import (
	"fmt"
	"io"
	"strings"
)

// Strings rebinds a string value and grows another with a Builder.
func Strings(w io.Writer) {
	s1 := "hello"
	var s2 strings.Builder
	s2.WriteString("demo")
	s2.WriteString(", jimmy")
	fmt.Fprintf(w, "s1 starts as %s\n", s1)
	s1 = "ahaha"
	fmt.Fprintf(w, "s1 = %s, s2 = %s\n", s1, s2.String())
}
