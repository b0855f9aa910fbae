package plotly

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"party-games-analysis/internal/constants"

	"github.com/google/uuid"
)

var pageTemplate = template.Must(template.New("figure").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <script src="{{.Script}}"></script>
  <style>
    html, body { margin: 0; padding: 0; height: 100%; width: 100%; background: #000000; }
    .plot { height: 100%; width: 100%; }
  </style>
</head>
<body>
  <div id="{{.DivID}}" class="plot"></div>
  <script>
    Plotly.newPlot({{.DivID}}, {{.Figure.Data}}, {{.Figure.Layout}}, {{.Config}});
  </script>
</body>
</html>
`))

type page struct {
	Title  string
	Script string
	DivID  string
	Figure *Figure
	Config map[string]bool
}

// ElementID derives the plot element id from the output file name, so the
// same chart written twice yields the same page.
func ElementID(path string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(filepath.Base(path))).String()
}

// Render returns fig as a standalone HTML page loading plotly.js from its CDN.
func Render(fig *Figure, title, id string) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, page{
		Title:  title,
		Script: constants.PlotlyScriptSource,
		DivID:  id,
		Figure: fig,
		Config: map[string]bool{"responsive": true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render figure: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteHTML renders fig and writes it to path.
func WriteHTML(fig *Figure, title, path string) error {
	data, err := Render(fig, title, ElementID(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, constants.OutputFilePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
