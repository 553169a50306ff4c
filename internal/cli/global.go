package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"
)

const (
	tableFormat = "table"
	jsonFormat  = "json"
	yamlFormat  = "yaml"
	csvFormat   = "csv"
)

type GlobalOptions struct {
	Output string

	legalOutputTypes []string
}

func DefaultGlobalOptions(legalOutputTypes ...string) GlobalOptions {
	return GlobalOptions{
		Output:           tableFormat,
		legalOutputTypes: legalOutputTypes,
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(o.legalOutputTypes, ", ")))
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	o.Output = strings.ToLower(strings.TrimSpace(o.Output))
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	if !funk.ContainsString(o.legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(o.legalOutputTypes, ", "))
	}
	return nil
}

func printStructured(w io.Writer, output string, v any) error {
	var (
		marshalled []byte
		err        error
	)

	switch output {
	case jsonFormat:
		marshalled, err = json.MarshalIndent(v, "", "  ")
	case yamlFormat:
		marshalled, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
	if err != nil {
		return fmt.Errorf("marshalling output: %w", err)
	}

	_, err = fmt.Fprintf(w, "%s\n", strings.TrimSuffix(string(marshalled), "\n"))
	return err
}
