package views

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"

	"lang-tour/models"
)

// RecordView renders parsed records to an output stream.
type RecordView interface {
	WriteRecord(rec models.Record) error
	Flush() error
	Rows() uint64
}

// NewRecordView returns the view for format, writing to w.
func NewRecordView(w io.Writer, format Format) (RecordView, error) {
	switch format {
	case FormatText:
		return NewTextView(w), nil
	case FormatCSV:
		return NewCSVView(w, true)
	default:
		return nil, fmt.Errorf("no view for format %v", format)
	}
}

// TextView prints one "{name}, {length}cm" line per record.
type TextView struct {
	buf  *bufio.Writer
	rows uint64
}

// NewTextView buffers output to w until Flush.
func NewTextView(w io.Writer) *TextView {
	return &TextView{buf: bufio.NewWriter(w)}
}

func (v *TextView) WriteRecord(rec models.Record) error {
	if _, err := v.buf.WriteString(rec.String() + "\n"); err != nil {
		return fmt.Errorf("text view write: %w", err)
	}
	v.rows++
	return nil
}

// Flush pushes buffered lines to the underlying writer.
func (v *TextView) Flush() error { return v.buf.Flush() }

// Rows returns the number of records written.
func (v *TextView) Rows() uint64 { return v.rows }

// CSVView writes records as CSV rows, optionally preceded by a header row.
type CSVView struct {
	buf  *bufio.Writer
	csv  *csv.Writer
	rows uint64
}

// NewCSVView wraps w and writes the header row when writeHeader is set.
func NewCSVView(w io.Writer, writeHeader bool) (*CSVView, error) {
	bw := bufio.NewWriter(w)
	cw := csv.NewWriter(bw)
	v := &CSVView{buf: bw, csv: cw}

	if writeHeader {
		if err := cw.Write(models.Record{}.CSVHeader()); err != nil {
			return nil, fmt.Errorf("csv write header: %w", err)
		}
	}
	return v, nil
}

func (v *CSVView) WriteRecord(rec models.Record) error {
	if err := v.csv.Write(rec.CSVRow()); err != nil {
		return fmt.Errorf("csv write row: %w", err)
	}
	v.rows++
	return nil
}

// Flush pushes buffered rows to the underlying writer.
func (v *CSVView) Flush() error {
	v.csv.Flush()
	if err := v.csv.Error(); err != nil {
		return err
	}
	return v.buf.Flush()
}

// Rows returns the number of data rows written (excludes header).
func (v *CSVView) Rows() uint64 { return v.rows }
