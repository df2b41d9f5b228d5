package lessons

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

const maxPoints uint32 = 100_000

// Types walks through integer parsing, typed arithmetic and float32 versus
// float64 rounding of 0.1 + 0.2.
func Types(w io.Writer) {
	guess, err := strconv.Atoi("42")
	if err != nil {
		fmt.Fprintln(w, "Not a number")
		return
	}
	fmt.Fprintf(w, "parsed guess: %d (max points %d)\n", guess, maxPoints)

	d := 98_222
	fmt.Fprintln(w, d)

	if x := math.Sqrt(-42.0); math.IsNaN(x) {
		fmt.Fprintln(w, "sqrt(-42) is undefined: NaN")
	}

	twenty := 20
	var twentyOne int32 = 21
	twentyTwo := int32(22)
	addition := int32(twenty) + twentyOne + twentyTwo
	fmt.Fprintf(w, "%d + %d + %d = %d\n", twenty, twentyOne, twentyTwo, addition)

	var oneMillion int64 = 1_000_000
	fmt.Fprintln(w, oneMillion*oneMillion)

	fortyTwos := [...]float32{42.0, 42, float32(42.0)}
	fmt.Fprintf(w, "%.2f\n", fortyTwos[0])

	abc := [3]float32{0.1, 0.2, 0.3}
	xyz := [3]float64{0.1, 0.2, 0.3}

	fmt.Fprintln(w, "abc (float32)")
	fmt.Fprintf(w, "   0.1 + 0.2: %x\n", math.Float32bits(abc[0]+abc[1]))
	fmt.Fprintf(w, "         0.3: %x\n", math.Float32bits(abc[2]))
	fmt.Fprintf(w, "       equal: %v\n", abc[0]+abc[1] == abc[2])
	fmt.Fprintln(w)

	fmt.Fprintln(w, "xyz (float64)")
	fmt.Fprintf(w, "   0.1 + 0.2: %x\n", math.Float64bits(xyz[0]+xyz[1]))
	fmt.Fprintf(w, "         0.3: %x\n", math.Float64bits(xyz[2]))
	fmt.Fprintf(w, "       equal: %v\n", xyz[0]+xyz[1] == xyz[2])
	fmt.Fprintln(w)
}
