package v1alpha1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/worksprings/inventory-roi/internal/config"
	"github.com/worksprings/inventory-roi/internal/form"
	handlers "github.com/worksprings/inventory-roi/internal/handlers/v1alpha1"
	"github.com/worksprings/inventory-roi/internal/handlers/v1alpha1/mappers"
	"github.com/worksprings/inventory-roi/internal/roi"
	"github.com/worksprings/inventory-roi/internal/service"
)

var _ = Describe("roi handlers", func() {
	var router *chi.Mux

	BeforeEach(func() {
		cfg, err := config.Load()
		Expect(err).To(BeNil())

		router = chi.NewRouter()
		handlers.NewServiceHandler(service.NewRoiService(), service.NewReportService(), cfg).Routes(router)
	})

	do := func(req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	postForm := func(values url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return do(req)
	}

	postJSON := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/roi", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return do(req)
	}

	Context("page", func() {
		It("renders the form with defaults", func() {
			rec := do(httptest.NewRequest(http.MethodGet, "/", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := rec.Body.String()
			Expect(body).To(ContainSubstring("We&#39;re Just Better Together"))
			Expect(body).To(ContainSubstring("Powered by Worksprings | Streamlining Inventory Management"))
			Expect(body).To(ContainSubstring("Calculate ROI"))
			Expect(body).To(ContainSubstring("#0073E6"))
			Expect(body).To(ContainSubstring("#005bb5"))
			Expect(body).To(ContainSubstring(`name="locations" min="1" max="5000" step="1" value="100"`))
			Expect(body).To(ContainSubstring(`type="range" id="shrinkage_rate_percent" name="shrinkage_rate_percent" min="0" max="10" step="0.1" value="2"`))
			Expect(body).ToNot(ContainSubstring("ROI Results"))
		})

		It("renders the results table after a calculation", func() {
			rec := postForm(form.Defaults().Values())
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := rec.Body.String()
			Expect(body).To(ContainSubstring("ROI Results"))
			Expect(body).To(ContainSubstring("<td>Labor Cost Savings</td><td>$45,000.00</td>"))
			Expect(body).To(ContainSubstring("<td>Estimated ROI (%)</td><td>575.93%</td>"))
			Expect(body).To(ContainSubstring(handlers.SuccessMessage))
			Expect(body).To(ContainSubstring("format=xlsx"))
		})

		It("keeps the submitted values", func() {
			values := form.Defaults().Values()
			values.Set(form.KeyLocations, "250")

			rec := postForm(values)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`name="locations" min="1" max="5000" step="1" value="250"`))
		})

		It("renders the timing error inline", func() {
			values := form.Defaults().Values()
			values.Set(form.KeyManualMinutes, "10")
			values.Set(form.KeyAutomatedMinutes, "10")

			rec := postForm(values)
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := rec.Body.String()
			Expect(body).To(ContainSubstring(`role="alert"`))
			Expect(body).To(ContainSubstring("Automated time must be less than manual time for savings to exist."))
			Expect(body).ToNot(ContainSubstring("ROI Results"))
		})

		It("rejects out of bounds values", func() {
			values := form.Defaults().Values()
			values.Set(form.KeyHourlyWage, "75")

			rec := postForm(values)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("must be between 10 and 50"))
		})

		It("rejects malformed values", func() {
			values := form.Defaults().Values()
			values.Set(form.KeyLocations, "many")

			rec := postForm(values)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("is not a valid number"))
		})
	})

	Context("api", func() {
		It("computes the metrics", func() {
			body, err := json.Marshal(form.Defaults().Input())
			Expect(err).To(BeNil())

			rec := postJSON(string(body))
			Expect(rec.Code).To(Equal(http.StatusOK))

			var reply mappers.ROIReply
			Expect(json.Unmarshal(rec.Body.Bytes(), &reply)).To(Succeed())
			Expect(reply.Status).To(Equal(mappers.StatusComputed))
			Expect(reply.Metrics.TotalSavings).To(BeNumerically("~", 365000, 1e-6))
			Expect(reply.Rows).To(HaveLen(7))
			Expect(reply.Rows[6]).To(Equal(roi.Row{Label: roi.LabelROIPercentage, Value: "575.93%"}))
		})

		It("returns 422 for the timing error", func() {
			rec := postJSON(`{"manual_minutes": 5, "automated_minutes": 5}`)
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))

			var reply mappers.ROIReply
			Expect(json.Unmarshal(rec.Body.Bytes(), &reply)).To(Succeed())
			Expect(reply.Status).To(Equal(mappers.StatusInvalid))
			Expect(reply.Reason).To(Equal(roi.ErrInvalidTiming.Error()))
			Expect(reply.Metrics).To(BeNil())
		})

		It("returns 400 for out of bounds values", func() {
			rec := postJSON(`{"locations": 0}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var reply mappers.ErrorReply
			Expect(json.Unmarshal(rec.Body.Bytes(), &reply)).To(Succeed())
			Expect(reply.Message).To(ContainSubstring("Number of Locations must be between 1 and 5000"))
			Expect(reply.Violations).To(HaveLen(1))
			Expect(reply.Violations[0].Key).To(Equal(form.KeyLocations))
		})

		It("returns 400 for an undecodable body", func() {
			rec := postJSON(`{"locations": "ten"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			rec = postJSON(``)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("lists the fields", func() {
			rec := do(httptest.NewRequest(http.MethodGet, "/api/v1/roi/fields", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))

			var reply mappers.FieldsReply
			Expect(json.Unmarshal(rec.Body.Bytes(), &reply)).To(Succeed())
			Expect(reply.Fields).To(Equal(form.Fields()))
		})

		It("answers health checks", func() {
			rec := do(httptest.NewRequest(http.MethodGet, "/health", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})

	Context("report", func() {
		It("downloads the csv report", func() {
			values := form.Defaults().Values()
			values.Set("format", "csv")

			rec := do(httptest.NewRequest(http.MethodGet, "/api/v1/roi/report?"+values.Encode(), nil))
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("text/csv; charset=utf-8"))
			Expect(rec.Header().Get("Content-Disposition")).To(Equal(`attachment; filename="roi-report.csv"`))
			Expect(rec.Body.String()).To(ContainSubstring(`Total Financial Impact,"$365,000.00"`))
		})

		It("uses defaults for missing fields", func() {
			rec := do(httptest.NewRequest(http.MethodGet, "/api/v1/roi/report?format=xlsx", nil))
			Expect(rec.Code).To(Equal(http.StatusOK))

			f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
			Expect(err).To(BeNil())
			defer f.Close()
			Expect(f.GetSheetList()).To(ContainElement("ROI Results"))
		})

		It("rejects unknown formats", func() {
			rec := do(httptest.NewRequest(http.MethodGet, "/api/v1/roi/report?format=pdf", nil))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
