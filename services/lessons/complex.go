package lessons

import (
	"fmt"
	"io"
)

// Complex adds two complex128 values and prints the parts of the sum.
func Complex(w io.Writer) {
	a := complex(2.1, -1.2)
	b := complex(11.1, 22.2)
	result := a + b

	fmt.Fprintf(w, "%v + %vi\n", real(result), imag(result))
	fmt.Fprintf(w, "a + b = %v\n", result)
}
