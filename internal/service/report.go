package service

import (
	"fmt"

	"github.com/worksprings/inventory-roi/internal/form"
	"github.com/worksprings/inventory-roi/internal/roi"
	"github.com/worksprings/inventory-roi/internal/service/report"
	"github.com/worksprings/inventory-roi/internal/service/report/csv"
	"github.com/worksprings/inventory-roi/internal/service/report/html"
	"github.com/worksprings/inventory-roi/internal/service/report/text"
	"github.com/worksprings/inventory-roi/internal/service/report/types"
	"github.com/worksprings/inventory-roi/internal/service/report/xlsx"
	"github.com/worksprings/inventory-roi/pkg/metrics"
)

type ReportRenderer = types.ReportRenderer
type ResultProcessor = types.ResultProcessor
type ReportFormat = types.ReportFormat
type ReportOptions = types.ReportOptions
type ReportData = types.ReportData

const (
	ReportFormatCSV  = types.ReportFormatCSV
	ReportFormatHTML = types.ReportFormatHTML
	ReportFormatXLSX = types.ReportFormatXLSX
	ReportFormatText = types.ReportFormatText
)

const DefaultReportTitle = "Inventory Counting ROI Report"

type ReportService struct {
	processor types.ResultProcessor
	renderers map[types.ReportFormat]types.ReportRenderer
}

func NewReportService() *ReportService {
	return NewReportServiceWithProcessor(report.NewStandardResultProcessor())
}

func NewReportServiceWithProcessor(processor types.ResultProcessor) *ReportService {
	service := &ReportService{
		processor: processor,
		renderers: make(map[types.ReportFormat]types.ReportRenderer),
	}

	for _, renderer := range []types.ReportRenderer{
		csv.NewRenderer(),
		html.NewRenderer(),
		xlsx.NewRenderer(),
		text.NewRenderer(),
	} {
		service.renderers[renderer.SupportedFormat()] = renderer
	}

	return service
}

// Supports reports whether a renderer is registered for format.
func (r *ReportService) Supports(format types.ReportFormat) bool {
	_, ok := r.renderers[format]
	return ok
}

func (r *ReportService) GenerateReport(sub form.Submission, result roi.Result, options types.ReportOptions) ([]byte, error) {
	renderer, exists := r.renderers[options.Format]
	if !exists {
		return nil, NewErrUnsupportedFormat(options.Format)
	}

	reportData, err := r.processor.ProcessResult(sub, result)
	if err != nil {
		return nil, fmt.Errorf("failed to process result: %w", err)
	}

	if options.Title == "" {
		options.Title = DefaultReportTitle
	}
	reportData.Options = options

	content, err := renderer.Render(reportData)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s report: %w", options.Format, err)
	}

	metrics.IncreaseReportsTotalMetric(string(options.Format))

	return content, nil
}
