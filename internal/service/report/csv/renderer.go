package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/worksprings/inventory-roi/internal/form"
	"github.com/worksprings/inventory-roi/internal/service/report/types"
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatCSV
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	var csvRows [][]string

	csvRows = append(csvRows, []string{data.Options.Title})
	csvRows = append(csvRows, []string{fmt.Sprintf("Generated: %s at %s",
		data.Timestamps.Generated, data.Timestamps.GeneratedTime)})
	csvRows = append(csvRows, []string{""})

	csvRows = r.addInputs(csvRows, data.Inputs)

	if !data.Valid() {
		csvRows = append(csvRows, []string{"ERROR"})
		csvRows = append(csvRows, []string{data.Error})
		return r.convertRowsToCSV(csvRows)
	}

	csvRows = append(csvRows, []string{"ROI RESULTS"})
	csvRows = append(csvRows, []string{"Metric", "Value"})
	for _, m := range data.Metrics {
		csvRows = append(csvRows, []string{m.Label, m.Format()})
	}

	return r.convertRowsToCSV(csvRows)
}

func (r *Renderer) addInputs(csvRows [][]string, inputs []types.InputLine) [][]string {
	csvRows = append(csvRows, []string{"INPUTS"})
	csvRows = append(csvRows, []string{"Input", "Value"})
	for _, in := range inputs {
		csvRows = append(csvRows, []string{in.Label, form.FormatNumber(in.Value)})
	}
	return append(csvRows, []string{""})
}

func (r *Renderer) convertRowsToCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}

	return buf.Bytes(), nil
}
