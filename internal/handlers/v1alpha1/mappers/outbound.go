package mappers

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/worksprings/inventory-roi/internal/form"
	"github.com/worksprings/inventory-roi/internal/roi"
)

const (
	StatusComputed = "computed"
	StatusInvalid  = "invalid"
)

type MetricsReply struct {
	TimeSavedPerCount float64 `json:"time_saved_per_count"`
	HoursSaved        float64 `json:"hours_saved"`
	LaborSavings      float64 `json:"labor_savings"`
	ShrinkageSavings  float64 `json:"shrinkage_savings"`
	RecoveredSales    float64 `json:"recovered_sales"`
	TotalSavings      float64 `json:"total_savings"`
	InvestmentCost    float64 `json:"investment_cost"`
	ROIAmount         float64 `json:"roi_amount"`
	ROIPercentage     float64 `json:"roi_percentage"`
}

type ROIReply struct {
	Status  string        `json:"status"`
	Reason  string        `json:"reason,omitempty"`
	Metrics *MetricsReply `json:"metrics,omitempty"`
	Rows    []roi.Row     `json:"rows,omitempty"`
}

func (r ROIReply) Render(w http.ResponseWriter, req *http.Request) error {
	if r.Status == StatusInvalid {
		render.Status(req, http.StatusUnprocessableEntity)
	}
	return nil
}

type FieldsReply struct {
	Fields []form.Field `json:"fields"`
}

func (f FieldsReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type ErrorReply struct {
	Message    string           `json:"message"`
	RequestID  *string          `json:"requestId,omitempty"`
	Violations []form.Violation `json:"violations,omitempty"`

	status int
}

func NewErrorReply(status int, message string, requestID *string) ErrorReply {
	return ErrorReply{Message: message, RequestID: requestID, status: status}
}

func (e ErrorReply) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.status)
	return nil
}

func ROIReplyFromResult(result roi.Result) ROIReply {
	switch r := result.(type) {
	case roi.Invalid:
		return ROIReply{Status: StatusInvalid, Reason: r.Reason}
	case roi.Computed:
		return ROIReply{
			Status: StatusComputed,
			Metrics: &MetricsReply{
				TimeSavedPerCount: r.TimeSavedPerCount,
				HoursSaved:        r.HoursSaved,
				LaborSavings:      r.LaborSavings,
				ShrinkageSavings:  r.ShrinkageSavings,
				RecoveredSales:    r.RecoveredSales,
				TotalSavings:      r.TotalSavings,
				InvestmentCost:    r.InvestmentCost,
				ROIAmount:         r.ROIAmount,
				ROIPercentage:     r.ROIPercentage,
			},
			Rows: r.Rows(),
		}
	default:
		return ROIReply{}
	}
}
