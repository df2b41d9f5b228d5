package lessons

import (
	"fmt"
	"io"
)

// Greet prints a greeting in three languages, one per line.
func Greet(w io.Writer) {
	southernGermany := "Grüß Gott!"
	chinese := "世界，你好"
	english := "World, hello!"
	for _, region := range []string{southernGermany, chinese, english} {
		fmt.Fprintln(w, region)
	}
}
