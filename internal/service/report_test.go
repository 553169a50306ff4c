package service_test

import (
	"bytes"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/worksprings/inventory-roi/internal/form"
	"github.com/worksprings/inventory-roi/internal/roi"
	"github.com/worksprings/inventory-roi/internal/service"
	"github.com/worksprings/inventory-roi/internal/service/report"
	"github.com/worksprings/inventory-roi/internal/service/report/xlsx"
)

var _ = Describe("report service", func() {
	var (
		srv      *service.ReportService
		sub      form.Submission
		computed roi.Result
	)

	BeforeEach(func() {
		clock := func() time.Time { return time.Date(2025, time.March, 4, 10, 30, 0, 0, time.UTC) }
		srv = service.NewReportServiceWithProcessor(report.NewStandardResultProcessor().WithClock(clock))
		sub = form.Defaults()
		computed = roi.Compute(sub.Input())
	})

	Context("GenerateReport", func() {
		It("renders the csv report", func() {
			content, err := srv.GenerateReport(sub, computed, service.ReportOptions{Format: service.ReportFormatCSV})
			Expect(err).To(BeNil())

			csv := string(content)
			Expect(csv).To(HavePrefix(service.DefaultReportTitle + "\n"))
			Expect(csv).To(ContainSubstring("Generated: March 4, 2025 at 10:30:00 UTC"))
			Expect(csv).To(ContainSubstring("Number of Locations,100\n"))
			Expect(csv).To(ContainSubstring("Metric,Value\n"))
			Expect(csv).To(ContainSubstring("Labor Cost Savings,\"$45,000.00\"\n"))
			Expect(csv).To(ContainSubstring("Estimated ROI (%),575.93%\n"))
			Expect(strings.Index(csv, "Labor Cost Savings")).To(BeNumerically("<", strings.Index(csv, "ROI Amount")))
		})

		It("renders the error message for an invalid result", func() {
			invalid := roi.Invalid{Reason: roi.ErrInvalidTiming.Error()}

			content, err := srv.GenerateReport(sub, invalid, service.ReportOptions{Format: service.ReportFormatCSV})
			Expect(err).To(BeNil())
			Expect(string(content)).To(ContainSubstring("ERROR\n" + roi.ErrInvalidTiming.Error()))
			Expect(string(content)).ToNot(ContainSubstring("ROI RESULTS"))
		})

		It("renders an escaped html document", func() {
			content, err := srv.GenerateReport(sub, computed, service.ReportOptions{
				Format: service.ReportFormatHTML,
				Title:  "<b>Report</b>",
			})
			Expect(err).To(BeNil())

			html := string(content)
			Expect(html).To(HavePrefix("<!DOCTYPE html>"))
			Expect(html).To(ContainSubstring("&lt;b&gt;Report&lt;/b&gt;"))
			Expect(html).To(ContainSubstring("<td>Total Financial Impact</td><td>$365,000.00</td>"))
		})

		It("renders an xlsx workbook", func() {
			content, err := srv.GenerateReport(sub, computed, service.ReportOptions{Format: service.ReportFormatXLSX})
			Expect(err).To(BeNil())

			f, err := excelize.OpenReader(bytes.NewReader(content))
			Expect(err).To(BeNil())
			defer f.Close()

			Expect(f.GetSheetList()).To(Equal([]string{xlsx.ResultsSheet, xlsx.InputsSheet}))

			rows, err := f.GetRows(xlsx.ResultsSheet)
			Expect(err).To(BeNil())
			header := -1
			for i, row := range rows {
				if len(row) > 0 && row[0] == "Metric" {
					header = i
					break
				}
			}
			Expect(header).To(BeNumerically(">", 0))
			Expect(rows[header]).To(Equal([]string{"Metric", "Value", "Amount"}))
			Expect(rows[header+1][0]).To(Equal(roi.LabelLaborSavings))
			Expect(rows[header+1][1]).To(Equal("$45,000.00"))
			Expect(rows[header+7][1]).To(Equal("575.93%"))

			inputs, err := f.GetRows(xlsx.InputsSheet)
			Expect(err).To(BeNil())
			Expect(inputs).To(HaveLen(len(form.Fields()) + 1))
		})

		It("renders the text table", func() {
			content, err := srv.GenerateReport(sub, computed, service.ReportOptions{Format: service.ReportFormatText})
			Expect(err).To(BeNil())
			Expect(string(content)).To(MatchRegexp(`Estimated ROI \(%\)\s+575\.93%`))
		})

		It("fails on an unsupported format", func() {
			_, err := srv.GenerateReport(sub, computed, service.ReportOptions{Format: "pdf"})

			var unsupported *service.ErrUnsupportedFormat
			Expect(errors.As(err, &unsupported)).To(BeTrue())
			Expect(srv.Supports("pdf")).To(BeFalse())
			Expect(srv.Supports(service.ReportFormatXLSX)).To(BeTrue())
		})
	})
})
