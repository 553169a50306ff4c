package html

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/worksprings/inventory-roi/internal/form"
	"github.com/worksprings/inventory-roi/internal/service/report/types"
)

type Renderer struct {
	tmpl *template.Template
}

type row struct {
	Label string
	Value string
}

type templateData struct {
	Title         string
	GeneratedDate string
	GeneratedTime string
	Inputs        []row
	Error         string
	Results       []row
}

func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("report").Parse(htmlReportTemplate)),
	}
}

func (r *Renderer) SupportedFormat() types.ReportFormat {
	return types.ReportFormatHTML
}

func (r *Renderer) Render(data *types.ReportData) ([]byte, error) {
	td := templateData{
		Title:         data.Options.Title,
		GeneratedDate: data.Timestamps.Generated,
		GeneratedTime: data.Timestamps.GeneratedTime,
		Error:         data.Error,
	}

	for _, in := range data.Inputs {
		td.Inputs = append(td.Inputs, row{Label: in.Label, Value: form.FormatNumber(in.Value)})
	}
	for _, m := range data.Metrics {
		td.Results = append(td.Results, row{Label: m.Label, Value: m.Format()})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, td); err != nil {
		return nil, fmt.Errorf("failed to execute HTML template: %w", err)
	}

	return buf.Bytes(), nil
}

const htmlReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{ .Title }}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; margin: 40px; color: #262730; }
        h1 { color: #0073E6; }
        table { border-collapse: collapse; min-width: 480px; margin-bottom: 24px; }
        th, td { border: 1px solid #e6e9ef; padding: 8px 12px; text-align: left; }
        th { background: #f0f2f6; }
        .error { background: #ffecec; color: #7d0000; padding: 12px; border-radius: 8px; }
        .generated { color: #808495; font-size: 13px; }
    </style>
</head>
<body>
    <h1>{{ .Title }}</h1>
    <p class="generated">Generated: {{ .GeneratedDate }} at {{ .GeneratedTime }}</p>

    <h2>Inputs</h2>
    <table>
        <thead><tr><th>Input</th><th>Value</th></tr></thead>
        <tbody>
        {{- range .Inputs }}
            <tr><td>{{ .Label }}</td><td>{{ .Value }}</td></tr>
        {{- end }}
        </tbody>
    </table>

    {{- if .Error }}
    <div class="error">{{ .Error }}</div>
    {{- else }}
    <h2>ROI Results</h2>
    <table>
        <thead><tr><th>Metric</th><th>Value</th></tr></thead>
        <tbody>
        {{- range .Results }}
            <tr><td>{{ .Label }}</td><td>{{ .Value }}</td></tr>
        {{- end }}
        </tbody>
    </table>
    {{- end }}
</body>
</html>
`
