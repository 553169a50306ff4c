package form

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/worksprings/inventory-roi/internal/roi"
)

// Submission is the set of values entered in the calculator form.
// The validate tags mirror the bounds of Fields.
type Submission struct {
	Locations            int     `json:"locations" validate:"min=1,max=5000"`
	CountsPerLocation    int     `json:"counts_per_location" validate:"min=1,max=30"`
	ManualMinutes        float64 `json:"manual_minutes" validate:"finite,min=5,max=120"`
	AutomatedMinutes     float64 `json:"automated_minutes" validate:"finite,min=1,max=30"`
	HourlyWage           float64 `json:"hourly_wage" validate:"finite,min=10,max=50"`
	ShrinkageRatePercent float64 `json:"shrinkage_rate_percent" validate:"finite,min=0,max=10,step=0.1"`
	LostSalesPerLocation float64 `json:"lost_sales_per_location" validate:"finite,min=1000,max=100000"`
}

// Defaults returns the values the page is first rendered with.
func Defaults() Submission {
	var s Submission
	for _, f := range fields {
		_ = s.set(f, FormatNumber(f.Default))
	}
	return s
}

// FromInput wraps calculator inputs so they can be validated.
func FromInput(in roi.Input) Submission {
	return Submission{
		Locations:            in.Locations,
		CountsPerLocation:    in.CountsPerLocation,
		ManualMinutes:        in.ManualMinutes,
		AutomatedMinutes:     in.AutomatedMinutes,
		HourlyWage:           in.HourlyWage,
		ShrinkageRatePercent: in.ShrinkageRatePercent,
		LostSalesPerLocation: in.LostSalesPerLocation,
	}
}

// Input converts the submission into calculator inputs.
func (s Submission) Input() roi.Input {
	return roi.Input{
		Locations:            s.Locations,
		CountsPerLocation:    s.CountsPerLocation,
		ManualMinutes:        s.ManualMinutes,
		AutomatedMinutes:     s.AutomatedMinutes,
		HourlyWage:           s.HourlyWage,
		ShrinkageRatePercent: s.ShrinkageRatePercent,
		LostSalesPerLocation: s.LostSalesPerLocation,
	}
}

// Value returns the current value of the field identified by key.
func (s Submission) Value(key string) float64 {
	switch key {
	case KeyLocations:
		return float64(s.Locations)
	case KeyCountsPerLocation:
		return float64(s.CountsPerLocation)
	case KeyManualMinutes:
		return s.ManualMinutes
	case KeyAutomatedMinutes:
		return s.AutomatedMinutes
	case KeyHourlyWage:
		return s.HourlyWage
	case KeyShrinkageRatePercent:
		return s.ShrinkageRatePercent
	case KeyLostSalesPerLocation:
		return s.LostSalesPerLocation
	default:
		return 0
	}
}

// Values encodes the submission as query parameters.
func (s Submission) Values() url.Values {
	v := url.Values{}
	for _, f := range fields {
		v.Set(f.Key, FormatNumber(s.Value(f.Key)))
	}
	return v
}

// Parse reads a submission from form or query values. Missing keys keep their default.
func Parse(values url.Values) (Submission, error) {
	s := Defaults()
	for _, f := range fields {
		raw := strings.TrimSpace(values.Get(f.Key))
		if raw == "" {
			continue
		}
		if err := s.set(f, raw); err != nil {
			return Submission{}, err
		}
	}
	return s, nil
}

func (s *Submission) set(f Field, raw string) error {
	if f.Integer {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return NewErrMalformedField(f, raw)
		}
		switch f.Key {
		case KeyLocations:
			s.Locations = n
		case KeyCountsPerLocation:
			s.CountsPerLocation = n
		default:
			return fmt.Errorf("field %s is not an integer field", f.Key)
		}
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return NewErrMalformedField(f, raw)
	}
	switch f.Key {
	case KeyManualMinutes:
		s.ManualMinutes = v
	case KeyAutomatedMinutes:
		s.AutomatedMinutes = v
	case KeyHourlyWage:
		s.HourlyWage = v
	case KeyShrinkageRatePercent:
		s.ShrinkageRatePercent = v
	case KeyLostSalesPerLocation:
		s.LostSalesPerLocation = v
	default:
		return fmt.Errorf("field %s is not a decimal field", f.Key)
	}
	return nil
}
