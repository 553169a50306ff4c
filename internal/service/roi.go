package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/worksprings/inventory-roi/internal/form"
	"github.com/worksprings/inventory-roi/internal/roi"
	"github.com/worksprings/inventory-roi/pkg/metrics"
	"github.com/worksprings/inventory-roi/pkg/requestid"
)

// RoiService checks a submission against the form bounds and runs it through the calculator.
type RoiService struct {
	calculator *roi.Calculator
}

func NewRoiService(opts ...roi.CalculatorOption) *RoiService {
	return &RoiService{
		calculator: roi.NewCalculator(opts...),
	}
}

// Calculate returns *ErrInvalidInput when the submission is outside of the form bounds.
// A submission whose automated time is not below the manual time is not an error: it
// yields roi.Invalid.
func (s *RoiService) Calculate(ctx context.Context, sub form.Submission) (roi.Result, error) {
	logger := zap.S().Named("roi_service").With("request_id", requestid.FromContext(ctx))

	if err := form.Validate(sub); err != nil {
		logger.Debugw("submission rejected", "error", err)
		metrics.IncreaseCalculationsTotalMetric(metrics.ResultRejected)
		return nil, NewErrInvalidInput(err)
	}

	result := s.calculator.Compute(sub.Input())

	switch r := result.(type) {
	case roi.Invalid:
		logger.Debugw("calculation invalid", "reason", r.Reason)
		metrics.IncreaseCalculationsTotalMetric(metrics.ResultInvalid)
	case roi.Computed:
		logger.Debugw("calculation computed",
			"locations", sub.Locations,
			"total_savings", r.TotalSavings,
			"roi_percentage", r.ROIPercentage,
		)
		metrics.IncreaseCalculationsTotalMetric(metrics.ResultComputed)
		metrics.UpdateLastROIPercentageMetric(r.ROIPercentage)
	}

	return result, nil
}
