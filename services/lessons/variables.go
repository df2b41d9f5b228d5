package lessons

import (
	"fmt"
	"io"
)

type pair struct {
	e int
	f int
}

// Variables shows rebinding, multiple assignment and block shadowing.
func Variables(w io.Writer) {
	x := 5
	fmt.Fprintf(w, "The value of x is: %d\n", x)
	x = 6
	fmt.Fprintf(w, "The value of x is: %d\n", x)

	// blank identifier keeps an unused value legal
	_ = 10

	var a, b int
	a, b = 1, 2
	arr := [...]int{1, 2, 3, 4, 5}
	c, d := arr[0], arr[len(arr)-2]
	e := pair{e: 5}.e
	fmt.Fprintf(w, "destructured: %v\n", [5]int{a, b, c, d, e})

	t := 5
	{
		t := t + 1
		{
			t := t * 2
			fmt.Fprintf(w, "The value of t in the inner scope is: %d\n", t)
		}
		fmt.Fprintf(w, "The value of t is: %d\n", t)
	}
	fmt.Fprintf(w, "The value of t outside every block is: %d\n", t)
}
