// Package dashboard writes the 4-up page that frames the report artifacts.
package dashboard

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"party-games-analysis/internal/constants"
)

// Panels names the four artifacts shown on the dashboard. They must sit in
// the same directory as the dashboard; only their base names are used.
type Panels struct {
	Table   string
	Sales   string
	CCU     string
	Revenue string
}

type Panel struct {
	Caption string
	Src     string
}

var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Party Game – Market Analysis Dashboard</title>
  <style>
    html, body {
      margin: 0;
      padding: 0;
      background: #000000;
      color: #ffffff;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
      height: 100%;
      width: 100%;
    }
    .dashboard {
      display: grid;
      grid-template-columns: 1fr 1fr;
      grid-template-rows: 1fr 1fr;
      gap: 20px;
      padding: 16px;
      box-sizing: border-box;
      height: 100vh;
    }
    .panel {
      position: relative;
      display: flex;
      flex-direction: column;
      background: #05070a;
      border: 2px solid #39ff14;
      border-radius: 10px;
      overflow: hidden;
      box-shadow: 0 0 16px rgba(57,255,20,0.25);
    }
    .panel-title {
      padding: 6px 12px;
      font-size: 14px;
      font-weight: 600;
      border-bottom: 1px solid #39ff14;
      background: linear-gradient(to right, #05070a, #111827);
      white-space: nowrap;
      overflow: hidden;
      text-overflow: ellipsis;
    }
    iframe {
      flex: 1;
      width: 100%;
      border: none;
    }
  </style>
</head>
<body>
  <div class="dashboard">
{{range .}}
    <div class="panel">
      <div class="panel-title">{{.Caption}}</div>
      <iframe src="{{.Src}}"></iframe>
    </div>
{{end}}
  </div>
</body>
</html>
`))

// Layout returns the panels in grid order: table and sales on top, CCU and
// revenue below.
func Layout(p Panels) []Panel {
	return []Panel{
		{Caption: "Lifetime Sales & Revenue Table", Src: filepath.Base(p.Table)},
		{Caption: "Monthly Estimated Sales (Positive Reviews × 30)", Src: filepath.Base(p.Sales)},
		{Caption: "Monthly Peak CCU by Game", Src: filepath.Base(p.CCU)},
		{Caption: "Estimated Lifetime Revenue by Game", Src: filepath.Base(p.Revenue)},
	}
}

// Render returns the dashboard page. Artifact files are not checked.
func Render(p Panels) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, Layout(p)); err != nil {
		return nil, fmt.Errorf("failed to render dashboard: %w", err)
	}
	return buf.Bytes(), nil
}

// Compose writes the dashboard into dir and returns its path.
func Compose(dir string, p Panels) (string, error) {
	data, err := Render(p)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, constants.DashboardFile)
	if err := os.WriteFile(path, data, constants.OutputFilePerm); err != nil {
		return "", fmt.Errorf("failed to write dashboard: %w", err)
	}
	return path, nil
}
