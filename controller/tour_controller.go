package controller

import (
	"context"
	"fmt"
	"io"
	"time"

	"lang-tour/services/ingest"
	"lang-tour/services/lessons"
	"lang-tour/utils"
)

// TourController runs the selected lessons one after another, in order.
// The sample lesson is routed through a SampleController so it honours the
// configured output format and debug echo.
type TourController struct {
	lessons []lessons.Lesson
	sample  *SampleController
	out     io.Writer

	ran []string
}

// NewTourController selects lessons by name; names overrides
// cfg.Lessons.Enabled, and both empty means every lesson.
func NewTourController(cfg *utils.TourConfig, names []string, out, diag io.Writer) (*TourController, error) {
	if len(names) == 0 {
		names = cfg.Lessons.Enabled
	}
	selected, err := lessons.Select(names)
	if err != nil {
		return nil, err
	}

	tc := &TourController{lessons: selected, out: out}
	for _, l := range selected {
		if l.Name == lessons.SampleName {
			tc.sample, err = NewSampleController(cfg.Sample, ingest.PenguinData, out, diag)
			if err != nil {
				return nil, fmt.Errorf("init sample lesson: %w", err)
			}
			break
		}
	}
	return tc, nil
}

// Run executes every selected lesson, checking ctx between lessons.
func (tc *TourController) Run(ctx context.Context) error {
	tc.ran = tc.ran[:0]
	for _, l := range tc.lessons {
		if err := ctx.Err(); err != nil {
			utils.L().Warn("tour interrupted before %s: %v", l.Name, err)
			return err
		}

		start := time.Now()
		if l.Name == lessons.SampleName && tc.sample != nil {
			if err := tc.sample.Run(ctx); err != nil {
				return fmt.Errorf("lesson %s: %w", l.Name, err)
			}
		} else {
			l.Run(tc.out)
		}
		tc.ran = append(tc.ran, l.Name)
		utils.L().Debug("lesson %-10s done in %s", l.Name, time.Since(start))
	}
	return nil
}

// Ran lists the lessons completed by the last Run.
func (tc *TourController) Ran() []string {
	return append([]string(nil), tc.ran...)
}

// LogStats logs what the last Run did.
func (tc *TourController) LogStats() {
	utils.L().Info("tour finished  (lessons=%d/%d)", len(tc.ran), len(tc.lessons))
	if tc.sample != nil {
		st := tc.sample.Stats()
		utils.L().Info("  sample   emitted=%d  unparsable=%d  malformed=%d",
			st.Emitted, st.Unparsable, st.Malformed)
	}
}
