package v1alpha1

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worksprings/inventory-roi/internal/config"
	"github.com/worksprings/inventory-roi/internal/service"
)

type ServiceHandler struct {
	roiSrv    *service.RoiService
	reportSrv *service.ReportService
	cfg       *config.Config
	page      *template.Template
}

func NewServiceHandler(roiSrv *service.RoiService, reportSrv *service.ReportService, cfg *config.Config) *ServiceHandler {
	return &ServiceHandler{
		roiSrv:    roiSrv,
		reportSrv: reportSrv,
		cfg:       cfg,
		page:      template.Must(template.New("page").Funcs(pageFuncs).Parse(pageTemplate)),
	}
}

// Routes mounts the page and the JSON API on router.
func (h *ServiceHandler) Routes(router chi.Router) {
	router.Get("/", h.GetPage)
	router.Post("/calculate", h.PostCalculate)
	router.Get("/health", h.Health)

	router.Route("/api/v1/roi", func(r chi.Router) {
		r.Post("/", h.CalculateROI)
		r.Get("/fields", h.ListFields)
		r.Get("/report", h.GetReport)
	})
}

// (GET /health)
func (h *ServiceHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
