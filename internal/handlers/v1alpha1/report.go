package v1alpha1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/worksprings/inventory-roi/internal/form"
	"github.com/worksprings/inventory-roi/internal/handlers/v1alpha1/mappers"
	"github.com/worksprings/inventory-roi/internal/service"
	"github.com/worksprings/inventory-roi/pkg/requestid"
)

// (GET /api/v1/roi/report)
func (h *ServiceHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zap.S().Named("report_handler").With("request_id", requestid.FromContext(ctx))

	query := r.URL.Query()

	format := service.ReportFormat(query.Get("format"))
	if format == "" {
		format = service.ReportFormatCSV
	}
	if !h.reportSrv.Supports(format) {
		message := fmt.Sprintf("unsupported report format: %s", format)
		_ = render.Render(w, r, mappers.NewErrorReply(http.StatusBadRequest, message, requestid.FromContextPtr(ctx)))
		return
	}

	sub, err := form.Parse(query)
	if err != nil {
		_ = render.Render(w, r, mappers.NewErrorReply(http.StatusBadRequest, err.Error(), requestid.FromContextPtr(ctx)))
		return
	}

	result, err := h.roiSrv.Calculate(ctx, sub)
	if err != nil {
		var invalidInput *service.ErrInvalidInput
		if errors.As(err, &invalidInput) {
			_ = render.Render(w, r, mappers.NewErrorReply(http.StatusBadRequest, err.Error(), requestid.FromContextPtr(ctx)))
			return
		}
		logger.Errorw("failed to calculate roi", "error", err)
		_ = render.Render(w, r, mappers.NewErrorReply(http.StatusInternalServerError, "failed to calculate roi", requestid.FromContextPtr(ctx)))
		return
	}

	content, err := h.reportSrv.GenerateReport(sub, result, service.ReportOptions{Format: format})
	if err != nil {
		logger.Errorw("failed to generate report", "format", format, "error", err)
		_ = render.Render(w, r, mappers.NewErrorReply(http.StatusInternalServerError, "failed to generate report", requestid.FromContextPtr(ctx)))
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.FileName()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
