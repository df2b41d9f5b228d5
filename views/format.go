package views

import "fmt"

// Format selects how records are rendered on the console.
type Format int

const (
	FormatText Format = iota
	FormatCSV
)

var formatNames = map[Format]string{
	FormatText: "text",
	FormatCSV:  "csv",
}

func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return "unknown"
}

// ParseFormat maps a config/flag value to a Format. Empty means text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	for f, n := range formatNames {
		if n == s {
			return f, nil
		}
	}
	return FormatText, fmt.Errorf("unknown output format %q (want text or csv)", s)
}
