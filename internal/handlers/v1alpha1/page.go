package v1alpha1

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/worksprings/inventory-roi/internal/form"
	"github.com/worksprings/inventory-roi/internal/roi"
	"github.com/worksprings/inventory-roi/internal/service"
	"github.com/worksprings/inventory-roi/internal/util"
	"github.com/worksprings/inventory-roi/pkg/requestid"
)

const SuccessMessage = "Calculation Complete! Adjust values to see different scenarios."

var pageFuncs = template.FuncMap{
	"number": form.FormatNumber,
}

type pageWidget struct {
	form.Field
	Value float64
}

type pageDownload struct {
	Label string
	URL   string
}

type pageData struct {
	BasePath       string
	Title          string
	Description    string
	Footer         string
	PartnerLogoURL string
	ProductLogoURL string
	LogoWidth      int

	Widgets   []pageWidget
	Error     string
	Rows      []roi.Row
	Success   string
	Downloads []pageDownload
}

func (h *ServiceHandler) newPageData(sub form.Submission) pageData {
	branding := h.cfg.Branding
	data := pageData{
		BasePath:       util.NormalizePathPrefix(h.cfg.Service.PathPrefix),
		Title:          branding.Title,
		Description:    branding.Description,
		Footer:         branding.Footer,
		PartnerLogoURL: branding.PartnerLogoURL,
		ProductLogoURL: branding.ProductLogoURL,
		LogoWidth:      branding.LogoWidth,
	}
	for _, f := range form.Fields() {
		data.Widgets = append(data.Widgets, pageWidget{Field: f, Value: sub.Value(f.Key)})
	}
	return data
}

// (GET /)
func (h *ServiceHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, http.StatusOK, h.newPageData(form.Defaults()))
}

// (POST /calculate)
func (h *ServiceHandler) PostCalculate(w http.ResponseWriter, r *http.Request) {
	logger := zap.S().Named("page_handler").With("request_id", requestid.FromContext(r.Context()))

	if err := r.ParseForm(); err != nil {
		data := h.newPageData(form.Defaults())
		data.Error = "failed to read the submitted form"
		logger.Debugw("failed to parse form", "error", err)
		h.writePage(w, r, http.StatusBadRequest, data)
		return
	}

	sub, err := form.Parse(r.PostForm)
	if err != nil {
		data := h.newPageData(form.Defaults())
		data.Error = err.Error()
		h.writePage(w, r, http.StatusBadRequest, data)
		return
	}

	data := h.newPageData(sub)

	result, err := h.roiSrv.Calculate(r.Context(), sub)
	if err != nil {
		var invalidInput *service.ErrInvalidInput
		if !errors.As(err, &invalidInput) {
			logger.Errorw("failed to calculate roi", "error", err)
			data.Error = "failed to calculate ROI"
			h.writePage(w, r, http.StatusInternalServerError, data)
			return
		}
		data.Error = err.Error()
		h.writePage(w, r, http.StatusBadRequest, data)
		return
	}

	switch res := result.(type) {
	case roi.Invalid:
		data.Error = res.Reason
	case roi.Computed:
		data.Rows = res.Rows()
		data.Success = SuccessMessage
		data.Downloads = downloads(data.BasePath, sub)
	}

	h.writePage(w, r, http.StatusOK, data)
}

func (h *ServiceHandler) writePage(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		zap.S().Named("page_handler").Errorw("failed to render page", "error", err, "request_id", requestid.FromContext(r.Context()))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func downloads(basePath string, sub form.Submission) []pageDownload {
	formats := []struct {
		label  string
		format service.ReportFormat
	}{
		{"Download CSV", service.ReportFormatCSV},
		{"Download Excel", service.ReportFormatXLSX},
	}

	out := make([]pageDownload, 0, len(formats))
	for _, f := range formats {
		values := sub.Values()
		values.Set("format", string(f.format))
		out = append(out, pageDownload{Label: f.label, URL: basePath + "/api/v1/roi/report?" + values.Encode()})
	}
	return out
}
