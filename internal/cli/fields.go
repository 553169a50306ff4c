package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/worksprings/inventory-roi/internal/form"
)

type FieldsOptions struct {
	GlobalOptions
}

func DefaultFieldsOptions() *FieldsOptions {
	return &FieldsOptions{
		GlobalOptions: DefaultGlobalOptions(tableFormat, jsonFormat, yamlFormat),
	}
}

func NewCmdFields() *cobra.Command {
	o := DefaultFieldsOptions()
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Display the calculator inputs with their bounds.",
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

func (o *FieldsOptions) Run(ctx context.Context, w io.Writer) error {
	fields := form.Fields()
	if o.Output != tableFormat {
		return printStructured(w, o.Output, fields)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 1, '\t', 0)
	fmt.Fprintln(tw, "FLAG\tLABEL\tMIN\tMAX\tDEFAULT\tSTEP")
	for _, f := range fields {
		fmt.Fprintf(tw, "--%s\t%s\t%s\t%s\t%s\t%s\n",
			flagName(f.Key),
			f.Label,
			form.FormatNumber(f.Min),
			form.FormatNumber(f.Max),
			form.FormatNumber(f.Default),
			form.FormatNumber(f.Step),
		)
	}
	return tw.Flush()
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func usage(key string) string {
	f, _ := form.Lookup(key)
	return fmt.Sprintf("%s (%s to %s)", f.Label, form.FormatNumber(f.Min), form.FormatNumber(f.Max))
}
