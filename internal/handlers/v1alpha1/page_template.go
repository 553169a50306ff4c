package v1alpha1

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>{{ .Title }}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; margin: 0; color: #262730; }
        main { max-width: 730px; margin: 0 auto; padding: 48px 16px; }
        .logos { display: flex; justify-content: center; align-items: center; gap: 48px; margin-bottom: 24px; }
        h1 { text-align: center; }
        .description { text-align: center; color: #555867; }
        .field { margin: 20px 0; }
        .field label { display: block; font-size: 14px; margin-bottom: 6px; }
        .field input[type=number] { width: 100%; box-sizing: border-box; padding: 8px; border: 1px solid #d6d6d9; border-radius: 8px; }
        .field input[type=range] { width: 85%; }
        .field output { margin-left: 12px; }
        .stButton button {
            background-color: #0073E6;
            color: white;
            font-size: 16px;
            border-radius: 10px;
            padding: 10px 20px;
            border: none;
            cursor: pointer;
        }
        .stButton button:hover { background-color: #005bb5; }
        .error { background: #ffecec; color: #7d0000; padding: 16px; border-radius: 8px; margin-top: 24px; }
        .success { background: #e8f9ee; color: #177233; padding: 16px; border-radius: 8px; }
        table { border-collapse: collapse; width: 100%; margin: 16px 0; }
        th, td { border: 1px solid #e6e9ef; padding: 8px 12px; text-align: left; }
        th { background: #f0f2f6; }
        .downloads a { margin-right: 16px; color: #0073E6; }
        footer { text-align: center; color: #808495; font-size: 14px; margin-top: 48px; }
    </style>
</head>
<body>
<main>
    <div class="logos">
        <img src="{{ .PartnerLogoURL }}" width="{{ .LogoWidth }}" alt="Partner logo">
        <img src="{{ .ProductLogoURL }}" width="{{ .LogoWidth }}" alt="Product logo">
    </div>
    <h1>{{ .Title }}</h1>
    <p class="description">{{ .Description }}</p>

    <form method="post" action="{{ .BasePath }}/calculate">
        {{- range .Widgets }}
        <div class="field">
            <label for="{{ .Key }}">{{ .Label }}</label>
            {{- if eq .Widget "slider" }}
            <input type="range" id="{{ .Key }}" name="{{ .Key }}" min="{{ number .Min }}" max="{{ number .Max }}" step="{{ number .Step }}" value="{{ number .Value }}" oninput="this.nextElementSibling.value = this.value">
            <output>{{ number .Value }}</output>
            {{- else }}
            <input type="number" id="{{ .Key }}" name="{{ .Key }}" min="{{ number .Min }}" max="{{ number .Max }}" step="{{ number .Step }}" value="{{ number .Value }}">
            {{- end }}
        </div>
        {{- end }}
        <div class="stButton"><button type="submit">Calculate ROI</button></div>
    </form>

    {{- if .Error }}
    <div class="error" role="alert">{{ .Error }}</div>
    {{- end }}

    {{- if .Rows }}
    <h2>ROI Results</h2>
    <table>
        <thead><tr><th>Metric</th><th>Value</th></tr></thead>
        <tbody>
        {{- range .Rows }}
            <tr><td>{{ .Label }}</td><td>{{ .Value }}</td></tr>
        {{- end }}
        </tbody>
    </table>
    <div class="success">{{ .Success }}</div>
    <p class="downloads">
        {{- range .Downloads }}
        <a href="{{ .URL }}">{{ .Label }}</a>
        {{- end }}
    </p>
    {{- end }}

    <footer>{{ .Footer }}</footer>
</main>
</body>
</html>
`
