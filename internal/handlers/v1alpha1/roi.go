package v1alpha1

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/worksprings/inventory-roi/internal/form"
	"github.com/worksprings/inventory-roi/internal/handlers/v1alpha1/mappers"
	"github.com/worksprings/inventory-roi/internal/service"
	"github.com/worksprings/inventory-roi/pkg/requestid"
)

// (POST /api/v1/roi)
func (h *ServiceHandler) CalculateROI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zap.S().Named("roi_handler").With("request_id", requestid.FromContext(ctx))

	sub, err := mappers.SubmissionFromJSON(r.Body)
	if err != nil {
		logger.Debugw("bad request body", "error", err)
		_ = render.Render(w, r, mappers.NewErrorReply(http.StatusBadRequest, err.Error(), requestid.FromContextPtr(ctx)))
		return
	}

	result, err := h.roiSrv.Calculate(ctx, sub)
	if err != nil {
		var invalidInput *service.ErrInvalidInput
		if errors.As(err, &invalidInput) {
			reply := mappers.NewErrorReply(http.StatusBadRequest, err.Error(), requestid.FromContextPtr(ctx))
			var outOfBounds *form.ErrOutOfBounds
			if errors.As(err, &outOfBounds) {
				reply.Violations = outOfBounds.Violations
			}
			_ = render.Render(w, r, reply)
			return
		}
		logger.Errorw("failed to calculate roi", "error", err)
		_ = render.Render(w, r, mappers.NewErrorReply(http.StatusInternalServerError, "failed to calculate roi", requestid.FromContextPtr(ctx)))
		return
	}

	_ = render.Render(w, r, mappers.ROIReplyFromResult(result))
}

// (GET /api/v1/roi/fields)
func (h *ServiceHandler) ListFields(w http.ResponseWriter, r *http.Request) {
	_ = render.Render(w, r, mappers.FieldsReply{Fields: form.Fields()})
}
