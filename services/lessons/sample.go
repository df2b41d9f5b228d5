package lessons

import (
	"fmt"
	"io"

	"lang-tour/services/ingest"
)

// Sample prints every valid record of the embedded penguin table as text,
// without debug echo. It is the config-free form of the lesson; the tour
// controller runs the sample through its own parser and view instead so
// that the configured format and debug echo apply.
func Sample(w io.Writer) {
	p := ingest.NewRecordParser(nil)
	for line := range p.Format(ingest.PenguinData) {
		fmt.Fprintln(w, line)
	}
}
