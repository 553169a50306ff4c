package roi

import "errors"

// ErrInvalidTiming is reported when the automated count time is not strictly lower
// than the manual count time.
var ErrInvalidTiming = errors.New("Automated time must be less than manual time for savings to exist.")

// Input holds the seven business inputs of the calculation.
// Bounds are enforced by the caller, not by Compute.
type Input struct {
	Locations            int     `json:"locations"`
	CountsPerLocation    int     `json:"counts_per_location"` // per location per month
	ManualMinutes        float64 `json:"manual_minutes"`
	AutomatedMinutes     float64 `json:"automated_minutes"`
	HourlyWage           float64 `json:"hourly_wage"`
	ShrinkageRatePercent float64 `json:"shrinkage_rate_percent"`
	LostSalesPerLocation float64 `json:"lost_sales_per_location"` // annual
}

// Result is either Invalid or Computed.
type Result interface {
	isResult()
}

// Invalid is returned when no savings can exist for the given timings.
type Invalid struct {
	Reason string
}

func (Invalid) isResult() {}

// Err returns the sentinel error behind the reason.
func (i Invalid) Err() error {
	return ErrInvalidTiming
}

// Computed carries the annualized metrics of a valid calculation.
type Computed struct {
	TimeSavedPerCount float64 // minutes
	HoursSaved        float64 // per month, all locations

	LaborSavings     float64
	ShrinkageSavings float64
	RecoveredSales   float64
	TotalSavings     float64
	InvestmentCost   float64
	ROIAmount        float64
	// ROIPercentage is floored at zero even when ROIAmount is negative.
	ROIPercentage float64
}

func (Computed) isResult() {}

// Metric labels, in display order.
const (
	LabelLaborSavings     = "Labor Cost Savings"
	LabelShrinkageSavings = "Reduction in Inventory Shrinkage"
	LabelRecoveredSales   = "Recovered Sales"
	LabelTotalSavings     = "Total Financial Impact"
	LabelInvestmentCost   = "Investment Cost"
	LabelROIAmount        = "ROI Amount"
	LabelROIPercentage    = "Estimated ROI (%)"
)

// Row is one formatted line of the results table.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Metric is one raw line of the results table.
type Metric struct {
	Label      string
	Value      float64
	Percentage bool
}

// Metrics returns the seven reported metrics in display order.
func (c Computed) Metrics() []Metric {
	return []Metric{
		{Label: LabelLaborSavings, Value: c.LaborSavings},
		{Label: LabelShrinkageSavings, Value: c.ShrinkageSavings},
		{Label: LabelRecoveredSales, Value: c.RecoveredSales},
		{Label: LabelTotalSavings, Value: c.TotalSavings},
		{Label: LabelInvestmentCost, Value: c.InvestmentCost},
		{Label: LabelROIAmount, Value: c.ROIAmount},
		{Label: LabelROIPercentage, Value: c.ROIPercentage, Percentage: true},
	}
}

// Rows returns the formatted results table.
func (c Computed) Rows() []Row {
	metrics := c.Metrics()
	rows := make([]Row, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, Row{Label: m.Label, Value: m.Format()})
	}
	return rows
}

// Format renders the metric as currency or percentage.
func (m Metric) Format() string {
	if m.Percentage {
		return FormatPercent(m.Value)
	}
	return FormatCurrency(m.Value)
}

// Compile-time assertions that both variants implement Result.
var (
	_ Result = Invalid{}
	_ Result = Computed{}
)
