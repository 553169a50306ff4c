package text

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/worksprings/inventory-roi/internal/service/report/types"
)

// Renderer prints the two-column results table used by the command line.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatText
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	var buf bytes.Buffer

	if !data.Valid() {
		fmt.Fprintf(&buf, "Error: %s\n", data.Error)
		return buf.Bytes(), nil
	}

	fmt.Fprintln(&buf, data.Options.Title)
	fmt.Fprintln(&buf)

	w := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Metric\tValue\t")
	for _, m := range data.Metrics {
		fmt.Fprintf(w, "%s\t%s\t\n", m.Label, m.Format())
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write table: %w", err)
	}

	return buf.Bytes(), nil
}
