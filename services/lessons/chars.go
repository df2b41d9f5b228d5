package lessons

import (
	"fmt"
	"io"
	"unicode/utf8"
	"unsafe"
)

// Chars prints the in-memory size and UTF-8 width of an ASCII and a CJK rune.
func Chars(w io.Writer) {
	for _, c := range []rune{'A', '中'} {
		fmt.Fprintf(w, "char %c take %d byte memory\n", c, unsafe.Sizeof(c))
		fmt.Fprintf(w, "char %c encodes to %d byte(s) in UTF-8\n", c, utf8.RuneLen(c))
	}
}
