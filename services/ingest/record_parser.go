package ingest

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"

	"lang-tour/models"
	"lang-tour/utils"
)

const fieldDelimiter = ","

var (
	ErrMalformedRecord  = errors.New("record has fewer than two fields")
	ErrUnparsableLength = errors.New("length is not a number")
)

// ParseStats counts what happened to each line of one parse pass.
type ParseStats struct {
	Lines      uint64
	Emitted    uint64
	Skipped    uint64 // header and blank lines
	Malformed  uint64
	Unparsable uint64
}

// RecordParser turns a source block into records, skipping the header,
// blank lines and anything that does not parse.
type RecordParser struct {
	trace io.Writer
	stats ParseStats
}

// NewRecordParser returns a parser. When trace is non-nil every input line
// is echoed to it as "debug: <raw> -> <fields>".
func NewRecordParser(trace io.Writer) *RecordParser {
	return &RecordParser{trace: trace}
}

// SplitFields splits line on the delimiter and trims each field.
func SplitFields(line string) []string {
	fields := strings.Split(line, fieldDelimiter)
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// ParseLine parses a single data line.
func ParseLine(line string) (models.Record, error) {
	return parseFields(SplitFields(line))
}

func parseFields(fields []string) (models.Record, error) {
	if len(fields) < 2 {
		return models.Record{}, ErrMalformedRecord
	}
	length, err := parseLength(fields[1])
	if err != nil {
		return models.Record{}, err
	}
	return models.Record{Name: fields[0], Length: length}, nil
}

// parseLength accepts plain decimal floats with an optional sign and
// exponent, plus inf, infinity and nan in any case and with either sign.
// Hex floats and digit separators are rejected.
func parseLength(s string) (float32, error) {
	if strings.ContainsAny(s, "xX_") {
		return 0, fmt.Errorf("%w: %q", ErrUnparsableLength, s)
	}
	unsigned := s
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		unsigned = s[1:]
	}
	if strings.EqualFold(unsigned, "nan") {
		return float32(math.NaN()), nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", ErrUnparsableLength, s)
	}
	// Out-of-range values saturate to ±Inf or zero, like any float32 overflow.
	return float32(v), nil
}

// Records lazily yields every valid record in block. Stats are reset at the
// start of each pass.
func (p *RecordParser) Records(block string) iter.Seq[models.Record] {
	return func(yield func(models.Record) bool) {
		p.stats = ParseStats{}
		for i, line := range Lines(block) {
			p.stats.Lines++
			fields := SplitFields(line)
			p.echo(line, fields)

			if i == 0 || strings.TrimSpace(line) == "" {
				p.stats.Skipped++
				continue
			}

			rec, err := parseFields(fields)
			switch {
			case errors.Is(err, ErrMalformedRecord):
				p.stats.Malformed++
				utils.L().Debug("line %d skipped: %v", i, err)
				continue
			case err != nil:
				p.stats.Unparsable++
				continue
			}

			p.stats.Emitted++
			if !yield(rec) {
				return
			}
		}
	}
}

// Format lazily yields "{name}, {length}cm" for every valid record in block.
func (p *RecordParser) Format(block string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for rec := range p.Records(block) {
			if !yield(rec.String()) {
				return
			}
		}
	}
}

// Stats returns the counters of the most recent pass.
func (p *RecordParser) Stats() ParseStats {
	return p.stats
}

func (p *RecordParser) echo(line string, fields []string) {
	if p.trace == nil {
		return
	}
	fmt.Fprintf(p.trace, "debug: %s -> %s\n", strconv.Quote(line), quoteList(fields))
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
