package controller

import (
	"context"
	"fmt"
	"io"

	"lang-tour/services/ingest"
	"lang-tour/utils"
	"lang-tour/views"
)

// SampleController drives one record-parser pass over a source block and
// renders every parsed record through a view.
//
// The run is synchronous: lines are pulled lazily from the parser and each
// record is written before the next line is split.
type SampleController struct {
	source string
	parser *ingest.RecordParser
	view   views.RecordView

	rowsBefore uint64
}

// NewSampleController wires parser and view from cfg. out receives records;
// diag receives the per-line debug echo when cfg.DebugEcho is set.
func NewSampleController(cfg utils.SampleConfig, source string, out, diag io.Writer) (*SampleController, error) {
	format, err := views.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	view, err := views.NewRecordView(out, format)
	if err != nil {
		return nil, err
	}

	var trace io.Writer
	if cfg.DebugEcho {
		trace = diag
	}

	utils.L().Debug("sample controller ready  (format=%s, debug_echo=%v)", format, cfg.DebugEcho)
	return &SampleController{
		source: source,
		parser: ingest.NewRecordParser(trace),
		view:   view,
	}, nil
}

// Run parses the whole source and flushes the view. It stops early, still
// flushing what was written, when ctx is cancelled.
func (sc *SampleController) Run(ctx context.Context) error {
	sc.rowsBefore = sc.view.Rows()

	var runErr error
	for rec := range sc.parser.Records(sc.source) {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		if err := sc.view.WriteRecord(rec); err != nil {
			runErr = err
			break
		}
	}

	if err := sc.view.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("flush sample output: %w", err)
	}

	st := sc.parser.Stats()
	utils.L().Debug("sample finished  (lines=%d, emitted=%d, skipped=%d, malformed=%d, unparsable=%d)",
		st.Lines, st.Emitted, st.Skipped, st.Malformed, st.Unparsable)
	return runErr
}

// Stats returns the parser counters of the last run.
func (sc *SampleController) Stats() ingest.ParseStats {
	return sc.parser.Stats()
}

// RowsWritten returns the number of records rendered by the last Run.
func (sc *SampleController) RowsWritten() uint64 {
	return sc.view.Rows() - sc.rowsBefore
}
