package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/worksprings/inventory-roi/internal/service/report/types"
)

const (
	ResultsSheet = "ROI Results"
	InputsSheet  = "Inputs"

	defaultSheet = "Sheet1"
)

var (
	currencyFormat = `"$"#,##0.00`
	percentFormat  = `#,##0.00"%"`
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatXLSX
}

// Render writes a workbook with the results sheet first. Column B holds the values
// formatted exactly as on the page, column C the raw numbers for further analysis.
func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, ResultsSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	styles, err := r.newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := r.writeResults(f, data, styles); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(InputsSheet); err != nil {
		return nil, fmt.Errorf("failed to create inputs sheet: %w", err)
	}
	if err := r.writeInputs(f, data, styles); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

type styles struct {
	header   int
	currency int
	percent  int
}

func (r *Renderer) newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error

	if s.header, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return s, fmt.Errorf("failed to create header style: %w", err)
	}
	if s.currency, err = f.NewStyle(&excelize.Style{CustomNumFmt: &currencyFormat}); err != nil {
		return s, fmt.Errorf("failed to create currency style: %w", err)
	}
	if s.percent, err = f.NewStyle(&excelize.Style{CustomNumFmt: &percentFormat}); err != nil {
		return s, fmt.Errorf("failed to create percent style: %w", err)
	}
	return s, nil
}

func (r *Renderer) writeResults(f *excelize.File, data *types.ReportData, s styles) error {
	rows := [][]any{
		{data.Options.Title},
		{fmt.Sprintf("Generated: %s at %s", data.Timestamps.Generated, data.Timestamps.GeneratedTime)},
		{},
	}

	if !data.Valid() {
		rows = append(rows, []any{"Error", data.Error})
		return r.writeRows(f, ResultsSheet, rows)
	}

	rows = append(rows, []any{"Metric", "Value", "Amount"})
	headerRow := len(rows)
	for _, m := range data.Metrics {
		rows = append(rows, []any{m.Label, m.Format(), m.Value})
	}

	if err := r.writeRows(f, ResultsSheet, rows); err != nil {
		return err
	}

	if err := f.SetCellStyle(ResultsSheet, cell(1, headerRow), cell(3, headerRow), s.header); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	for i, m := range data.Metrics {
		rowIdx := headerRow + 1 + i
		style := s.currency
		if m.Percentage {
			style = s.percent
		}
		if err := f.SetCellStyle(ResultsSheet, cell(3, rowIdx), cell(3, rowIdx), style); err != nil {
			return fmt.Errorf("failed to style amount: %w", err)
		}
	}

	return f.SetColWidth(ResultsSheet, "A", "C", 36)
}

func (r *Renderer) writeInputs(f *excelize.File, data *types.ReportData, s styles) error {
	rows := [][]any{{"Input", "Value"}}
	for _, in := range data.Inputs {
		rows = append(rows, []any{in.Label, in.Value})
	}

	if err := r.writeRows(f, InputsSheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(InputsSheet, "A1", "B1", s.header); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	return f.SetColWidth(InputsSheet, "A", "A", 52)
}

func (r *Renderer) writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		for j, v := range row {
			if err := f.SetCellValue(sheet, cell(j+1, i+1), v); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, cell(j+1, i+1), err)
			}
		}
	}
	return nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
