package roi

const (
	// DefaultRecoverableSalesRatio is the share of lost sales recovered through better tracking.
	DefaultRecoverableSalesRatio = 0.30
	// DefaultMonthsPerYear annualizes the monthly count rate.
	DefaultMonthsPerYear = 12.0

	minutesPerHour = 60
)

var defaultCalculator = NewCalculator()

// Compute runs the calculation with the default assumptions.
func Compute(in Input) Result {
	return defaultCalculator.Compute(in)
}

// Calculator computes ROI results. It is immutable and safe for concurrent use.
type Calculator struct {
	recoverableSalesRatio float64
	monthsPerYear         float64
}

// CalculatorOption configuration option for the calculator
type CalculatorOption func(*Calculator)

// WithRecoverableSalesRatio sets the share of lost sales that can be recovered.
// Non-positive values are ignored and the default is kept.
func WithRecoverableSalesRatio(ratio float64) CalculatorOption {
	return func(c *Calculator) {
		if ratio > 0 {
			c.recoverableSalesRatio = ratio
		}
	}
}

// WithMonthsPerYear sets the factor turning monthly figures into yearly ones.
// Non-positive values are ignored and the default is kept.
func WithMonthsPerYear(months float64) CalculatorOption {
	return func(c *Calculator) {
		if months > 0 {
			c.monthsPerYear = months
		}
	}
}

// NewCalculator creates a Calculator with default assumptions that
//
//	can be overridden by Options
func NewCalculator(opts ...CalculatorOption) *Calculator {
	res := Calculator{
		recoverableSalesRatio: DefaultRecoverableSalesRatio,
		monthsPerYear:         DefaultMonthsPerYear,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Compute returns Invalid when the automated count is not faster than the manual one,
// Computed otherwise. The evaluation order of every expression is significant for the
// reported values and must not be rearranged.
func (c *Calculator) Compute(in Input) Result {
	if in.AutomatedMinutes >= in.ManualMinutes {
		return Invalid{Reason: ErrInvalidTiming.Error()}
	}

	locations := float64(in.Locations)
	counts := float64(in.CountsPerLocation)

	timeSaved := in.ManualMinutes - in.AutomatedMinutes
	hoursSaved := (locations * counts * timeSaved) / minutesPerHour

	laborSavings := hoursSaved * in.HourlyWage * c.monthsPerYear
	shrinkageSavings := (in.ShrinkageRatePercent / 100) * in.LostSalesPerLocation * locations
	recoveredSales := (in.LostSalesPerLocation * c.recoverableSalesRatio) * locations
	totalSavings := laborSavings + shrinkageSavings + recoveredSales

	// the investment baseline is the manual labor cost before automation
	investmentCost := locations * counts * in.ManualMinutes / minutesPerHour * in.HourlyWage * c.monthsPerYear
	roiAmount := totalSavings - investmentCost

	roiPercentage := 0.0
	if investmentCost > 0 {
		roiPercentage = (roiAmount / investmentCost) * 100
	}
	if roiPercentage < 0 {
		roiPercentage = 0
	}

	return Computed{
		TimeSavedPerCount: timeSaved,
		HoursSaved:        hoursSaved,
		LaborSavings:      laborSavings,
		ShrinkageSavings:  shrinkageSavings,
		RecoveredSales:    recoveredSales,
		TotalSavings:      totalSavings,
		InvestmentCost:    investmentCost,
		ROIAmount:         roiAmount,
		ROIPercentage:     roiPercentage,
	}
}
