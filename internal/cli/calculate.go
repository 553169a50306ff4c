package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/worksprings/inventory-roi/internal/form"
	"github.com/worksprings/inventory-roi/internal/handlers/v1alpha1/mappers"
	"github.com/worksprings/inventory-roi/internal/roi"
	"github.com/worksprings/inventory-roi/internal/service"
)

type CalculateOptions struct {
	GlobalOptions

	Submission form.Submission
}

func DefaultCalculateOptions() *CalculateOptions {
	return &CalculateOptions{
		GlobalOptions: DefaultGlobalOptions(tableFormat, jsonFormat, yamlFormat, csvFormat),
		Submission:    form.Defaults(),
	}
}

func NewCmdCalculate() *cobra.Command {
	o := DefaultCalculateOptions()
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Estimate the ROI of automated inventory counting.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *CalculateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	s := &o.Submission
	fs.IntVar(&s.Locations, flagName(form.KeyLocations), s.Locations, usage(form.KeyLocations))
	fs.IntVar(&s.CountsPerLocation, flagName(form.KeyCountsPerLocation), s.CountsPerLocation, usage(form.KeyCountsPerLocation))
	fs.Float64Var(&s.ManualMinutes, flagName(form.KeyManualMinutes), s.ManualMinutes, usage(form.KeyManualMinutes))
	fs.Float64Var(&s.AutomatedMinutes, flagName(form.KeyAutomatedMinutes), s.AutomatedMinutes, usage(form.KeyAutomatedMinutes))
	fs.Float64Var(&s.HourlyWage, flagName(form.KeyHourlyWage), s.HourlyWage, usage(form.KeyHourlyWage))
	fs.Float64Var(&s.ShrinkageRatePercent, flagName(form.KeyShrinkageRatePercent), s.ShrinkageRatePercent, usage(form.KeyShrinkageRatePercent))
	fs.Float64Var(&s.LostSalesPerLocation, flagName(form.KeyLostSalesPerLocation), s.LostSalesPerLocation, usage(form.KeyLostSalesPerLocation))
}

func (o *CalculateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return form.Validate(o.Submission)
}

func (o *CalculateOptions) Run(ctx context.Context, w io.Writer) error {
	result, err := service.NewRoiService().Calculate(ctx, o.Submission)
	if err != nil {
		return err
	}

	invalid, isInvalid := result.(roi.Invalid)

	switch o.Output {
	case jsonFormat, yamlFormat:
		if err := printStructured(w, o.Output, mappers.ROIReplyFromResult(result)); err != nil {
			return err
		}
	default:
		if isInvalid {
			break
		}
		format := service.ReportFormatText
		if o.Output == csvFormat {
			format = service.ReportFormatCSV
		}
		content, err := service.NewReportService().GenerateReport(o.Submission, result, service.ReportOptions{Format: format})
		if err != nil {
			return fmt.Errorf("rendering result: %w", err)
		}
		if _, err := w.Write(content); err != nil {
			return err
		}
	}

	if isInvalid {
		return invalid.Err()
	}
	return nil
}
