package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	inventoryROI = "inventory_roi"

	// Calculation metrics
	calculationsTotal = "calculations_total"
	lastROIPercentage = "last_roi_percentage"

	// Report metrics
	reportsTotal = "reports_total"

	// Labels
	resultLabel = "result"
	formatLabel = "format"

	// Result label values
	ResultComputed = "computed"
	ResultInvalid  = "invalid"
	ResultRejected = "rejected"
)

var calculationsTotalLabels = []string{
	resultLabel,
}

var reportsTotalLabels = []string{
	formatLabel,
}

/**
* Metrics definition
**/
var calculationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: inventoryROI,
		Name:      calculationsTotal,
		Help:      "number of ROI calculations partitioned by result",
	},
	calculationsTotalLabels,
)

var lastROIPercentageMetric = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Subsystem: inventoryROI,
		Name:      lastROIPercentage,
		Help:      "reported ROI percentage of the last computed calculation",
	},
)

var reportsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: inventoryROI,
		Name:      reportsTotal,
		Help:      "number of generated ROI reports partitioned by format",
	},
	reportsTotalLabels,
)

// IncreaseCalculationsTotalMetric counts one calculation with the given result.
func IncreaseCalculationsTotalMetric(result string) {
	labels := prometheus.Labels{
		resultLabel: result,
	}
	calculationsTotalMetric.With(labels).Inc()
}

// UpdateLastROIPercentageMetric records the percentage of the latest computed result.
func UpdateLastROIPercentageMetric(percentage float64) {
	lastROIPercentageMetric.Set(percentage)
}

// IncreaseReportsTotalMetric counts one generated report.
func IncreaseReportsTotalMetric(format string) {
	labels := prometheus.Labels{
		formatLabel: format,
	}
	reportsTotalMetric.With(labels).Inc()
}

// NewPrometheusMetricsHandler serves the default registry.
func NewPrometheusMetricsHandler() *PrometheusMetricsHandler {
	return &PrometheusMetricsHandler{gatherer: prometheus.DefaultGatherer}
}

type PrometheusMetricsHandler struct {
	gatherer prometheus.Gatherer
}

func (p *PrometheusMetricsHandler) Handler() http.Handler {
	return promhttp.HandlerFor(p.gatherer, promhttp.HandlerOpts{})
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(calculationsTotalMetric)
	prometheus.MustRegister(lastROIPercentageMetric)
	prometheus.MustRegister(reportsTotalMetric)
}
