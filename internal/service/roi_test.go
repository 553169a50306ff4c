package service_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/worksprings/inventory-roi/internal/form"
	"github.com/worksprings/inventory-roi/internal/roi"
	"github.com/worksprings/inventory-roi/internal/service"
	"github.com/worksprings/inventory-roi/pkg/requestid"
)

var _ = Describe("roi service", func() {
	var (
		srv *service.RoiService
		ctx context.Context
	)

	BeforeEach(func() {
		srv = service.NewRoiService()
		ctx = requestid.ToContext(context.Background(), "test-request")
	})

	Context("Calculate", func() {
		It("computes the default submission", func() {
			result, err := srv.Calculate(ctx, form.Defaults())
			Expect(err).To(BeNil())

			computed, ok := result.(roi.Computed)
			Expect(ok).To(BeTrue())
			Expect(computed.LaborSavings).To(BeNumerically("~", 45000, 1e-6))
			Expect(computed.ShrinkageSavings).To(BeNumerically("~", 20000, 1e-6))
			Expect(computed.RecoveredSales).To(BeNumerically("~", 300000, 1e-6))
			Expect(computed.TotalSavings).To(BeNumerically("~", 365000, 1e-6))
			Expect(computed.InvestmentCost).To(BeNumerically("~", 54000, 1e-6))
			Expect(computed.ROIAmount).To(BeNumerically("~", 311000, 1e-6))
			Expect(computed.ROIPercentage).To(BeNumerically("~", 575.925925925926, 1e-9))
		})

		It("returns the invalid variant when automated time is not below manual time", func() {
			sub := form.Defaults()
			sub.ManualMinutes = 10
			sub.AutomatedMinutes = 10

			result, err := srv.Calculate(ctx, sub)
			Expect(err).To(BeNil())

			invalid, ok := result.(roi.Invalid)
			Expect(ok).To(BeTrue())
			Expect(invalid.Reason).To(Equal("Automated time must be less than manual time for savings to exist."))
		})

		It("rejects submissions outside of the form bounds", func() {
			sub := form.Defaults()
			sub.Locations = 0
			sub.HourlyWage = 60

			result, err := srv.Calculate(ctx, sub)
			Expect(result).To(BeNil())
			Expect(err).ToNot(BeNil())

			var invalidInput *service.ErrInvalidInput
			Expect(errors.As(err, &invalidInput)).To(BeTrue())

			var outOfBounds *form.ErrOutOfBounds
			Expect(errors.As(err, &outOfBounds)).To(BeTrue())
			Expect(outOfBounds.Violations).To(HaveLen(2))
		})

		It("rejects non finite values", func() {
			sub := form.Defaults()
			sub.LostSalesPerLocation = math.Inf(1)

			_, err := srv.Calculate(ctx, sub)
			var invalidInput *service.ErrInvalidInput
			Expect(errors.As(err, &invalidInput)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("must be a finite number"))
		})

		It("clamps a negative percentage to zero", func() {
			sub := form.Defaults()
			sub.Locations = 1
			sub.CountsPerLocation = 30
			sub.ManualMinutes = 120
			sub.AutomatedMinutes = 1
			sub.HourlyWage = 50
			sub.ShrinkageRatePercent = 0
			sub.LostSalesPerLocation = 1000

			result, err := srv.Calculate(ctx, sub)
			Expect(err).To(BeNil())

			computed := result.(roi.Computed)
			Expect(computed.ROIAmount).To(BeNumerically("<", 0))
			Expect(computed.ROIPercentage).To(Equal(0.0))
		})

		It("uses the configured calculator options", func() {
			srv = service.NewRoiService(roi.WithRecoverableSalesRatio(0.5))

			result, err := srv.Calculate(ctx, form.Defaults())
			Expect(err).To(BeNil())
			Expect(result.(roi.Computed).RecoveredSales).To(BeNumerically("~", 500000, 1e-6))
		})
	})
})
