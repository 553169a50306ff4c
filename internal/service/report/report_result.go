package report

import (
	"fmt"
	"time"

	"github.com/worksprings/inventory-roi/internal/form"
	"github.com/worksprings/inventory-roi/internal/roi"
	"github.com/worksprings/inventory-roi/internal/service/report/types"
)

type StandardResultProcessor struct {
	now func() time.Time
}

func NewStandardResultProcessor() *StandardResultProcessor {
	return &StandardResultProcessor{now: time.Now}
}

// WithClock replaces the time source of the generated timestamps.
func (p *StandardResultProcessor) WithClock(now func() time.Time) *StandardResultProcessor {
	p.now = now
	return p
}

func (p *StandardResultProcessor) ProcessResult(submission form.Submission, result roi.Result) (*types.ReportData, error) {
	data := &types.ReportData{
		Inputs:     p.processInputs(submission),
		Timestamps: p.generateTimestamps(),
	}

	switch r := result.(type) {
	case roi.Invalid:
		data.Error = r.Reason
	case roi.Computed:
		data.Metrics = r.Metrics()
	default:
		return nil, fmt.Errorf("unknown result type %T", result)
	}

	return data, nil
}

func (p *StandardResultProcessor) processInputs(submission form.Submission) []types.InputLine {
	fields := form.Fields()
	lines := make([]types.InputLine, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, types.InputLine{
			Key:   f.Key,
			Label: f.Label,
			Value: submission.Value(f.Key),
		})
	}
	return lines
}

func (p *StandardResultProcessor) generateTimestamps() types.ReportTimestamps {
	now := p.now()
	return types.ReportTimestamps{
		Generated:     now.Format("January 2, 2006"),
		GeneratedTime: now.Format("15:04:05 MST"),
	}
}
