// Package charts turns cleaned records and the revenue summary into the
// report's standalone HTML charts.
package charts

import (
	"time"

	"party-games-analysis/internal/config"
	"party-games-analysis/internal/constants"
	"party-games-analysis/internal/plotly"

	"github.com/rs/zerolog"
)

// Chart is a rendered figure and the file it was written to.
type Chart struct {
	Figure *plotly.Figure
	Path   string
}

type Renderer struct {
	cfg    *config.Config
	logger zerolog.Logger
}

func NewRenderer(cfg *config.Config, logger zerolog.Logger) *Renderer {
	return &Renderer{cfg: cfg, logger: logger}
}

func (r *Renderer) write(fig *plotly.Figure, title, file string) (*Chart, error) {
	path := r.cfg.OutPath(file)
	start := time.Now()

	if err := plotly.WriteHTML(fig, title, path); err != nil {
		r.logger.Error().Err(err).Str("path", path).Msg("failed to write chart")
		return nil, err
	}

	r.logger.Info().
		Str("path", path).
		Int("traces", len(fig.Data)).
		Int("annotations", len(fig.Layout.Annotations)).
		Dur("duration", time.Since(start)).
		Msg("chart written")
	return &Chart{Figure: fig, Path: path}, nil
}

func monthAxisValue(t time.Time) string {
	return t.Format(constants.DateLayout)
}

func peakAnnotation(x, y any, text string, ax *float64, ay float64, size float64) plotly.Annotation {
	return plotly.Annotation{
		X:         x,
		Y:         y,
		Text:      text,
		ShowArrow: true,
		ArrowHead: 2,
		AX:        ax,
		AY:        ay,
		Font:      &plotly.Font{Color: "white", Size: size},
		BGColor:   "rgba(0,0,0,0.6)",
	}
}

var timeSeriesMargin = &plotly.Margin{L: 40, R: 40, T: 80, B: 40}
