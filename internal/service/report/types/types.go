package types

import (
	"github.com/worksprings/inventory-roi/internal/form"
	"github.com/worksprings/inventory-roi/internal/roi"
)

type ReportRenderer interface {
	Render(data *ReportData) ([]byte, error)
	SupportedFormat() ReportFormat
}

type ResultProcessor interface {
	ProcessResult(submission form.Submission, result roi.Result) (*ReportData, error)
}

type ReportFormat string

const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatHTML ReportFormat = "html"
	ReportFormatXLSX ReportFormat = "xlsx"
	ReportFormatText ReportFormat = "text"
)

// ContentType is the media type of a rendered report.
func (f ReportFormat) ContentType() string {
	switch f {
	case ReportFormatCSV:
		return "text/csv; charset=utf-8"
	case ReportFormatHTML:
		return "text/html; charset=utf-8"
	case ReportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/plain; charset=utf-8"
	}
}

// FileName is the attachment name of a rendered report.
func (f ReportFormat) FileName() string {
	ext := string(f)
	if f == ReportFormatText {
		ext = "txt"
	}
	return "roi-report." + ext
}

type ReportOptions struct {
	Format ReportFormat
	Title  string
}

type ReportData struct {
	Options    ReportOptions
	Inputs     []InputLine
	Error      string // set when the calculation is invalid
	Metrics    []roi.Metric
	Timestamps ReportTimestamps
}

// Valid reports whether the calculation produced metrics.
func (d *ReportData) Valid() bool {
	return d.Error == ""
}

type InputLine struct {
	Key   string
	Label string
	Value float64
}

type ReportTimestamps struct {
	Generated     string
	GeneratedTime string
}
