package models

import (
	"math"
	"strconv"
)

// ─── shared formatting helpers (package-private) ────────────────────────

// ftoa32 renders v with the fewest digits that round-trip through a
// float32, never switching to exponent notation.
func ftoa32(v float32) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 32)
}

// CSVRowWriter is the interface every exportable model must satisfy.
type CSVRowWriter interface {
	CSVHeader() []string
	CSVRow() []string
}
