package lessons

import (
	"fmt"
	"io"
)

// Ownership contrasts passing values by copy with handing back a slice that
// still shares its backing array.
func Ownership(w io.Writer) {
	{
		s := "hello"
		takesOwnership(w, s)

		x := 5
		makesCopy(w, x)
		fmt.Fprintf(w, "ownership-%d\n", x)
	}

	{
		s1 := givesOwnership()
		s2 := []byte("hello")
		s3 := takesAndGivesBack(s2)
		// s3 shares s2's backing array; a copy would not
		s3[0] = 'j'
		fmt.Fprintf(w, "given %s, handed back %s, original now %s\n", s1, s3, s2)
	}
}

func takesOwnership(w io.Writer, someString string) {
	fmt.Fprintf(w, "ownership-%s\n", someString)
}

func makesCopy(w io.Writer, someInteger int) {
	fmt.Fprintf(w, "ownership-%d\n", someInteger)
}

func givesOwnership() string {
	someString := "hello"
	return someString
}

func takesAndGivesBack(aSlice []byte) []byte {
	return aSlice
}
