package form

import "strconv"

// Field keys, shared by the HTML form, the query string of report downloads and the
// JSON API.
const (
	KeyLocations            = "locations"
	KeyCountsPerLocation    = "counts_per_location"
	KeyManualMinutes        = "manual_minutes"
	KeyAutomatedMinutes     = "automated_minutes"
	KeyHourlyWage           = "hourly_wage"
	KeyShrinkageRatePercent = "shrinkage_rate_percent"
	KeyLostSalesPerLocation = "lost_sales_per_location"
)

type Widget string

const (
	WidgetNumber Widget = "number"
	WidgetSlider Widget = "slider"
)

// Field describes one input widget of the calculator page.
type Field struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Widget  Widget  `json:"widget"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
	Step    float64 `json:"step"`
	Integer bool    `json:"integer"`
}

var fields = []Field{
	{Key: KeyLocations, Label: "Number of Locations", Widget: WidgetNumber, Min: 1, Max: 5000, Default: 100, Step: 1, Integer: true},
	{Key: KeyCountsPerLocation, Label: "Inventory Counts per Location per Month", Widget: WidgetNumber, Min: 1, Max: 30, Default: 5, Step: 1, Integer: true},
	{Key: KeyManualMinutes, Label: "Time to Manually Take Inventory (Minutes)", Widget: WidgetSlider, Min: 5, Max: 120, Default: 30, Step: 1},
	{Key: KeyAutomatedMinutes, Label: "Time with NomadGo (Minutes)", Widget: WidgetSlider, Min: 1, Max: 30, Default: 5, Step: 1},
	{Key: KeyHourlyWage, Label: "Hourly Wage of Employees Performing Counts ($)", Widget: WidgetNumber, Min: 10.0, Max: 50.0, Default: 18.0, Step: 0.01},
	{Key: KeyShrinkageRatePercent, Label: "Estimated Inventory Shrinkage (%)", Widget: WidgetSlider, Min: 0.0, Max: 10.0, Default: 2.0, Step: 0.1},
	{Key: KeyLostSalesPerLocation, Label: "Average Sales Lost Due to Stockouts ($ per Location)", Widget: WidgetNumber, Min: 1000, Max: 100000, Default: 10000, Step: 1},
}

// Fields returns the input widgets in page order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Lookup returns the field registered under key.
func Lookup(key string) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// FormatNumber renders a bound or value the way it is written in an HTML attribute.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
