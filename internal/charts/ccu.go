package charts

import (
	"fmt"
	"time"

	"party-games-analysis/internal/constants"
	"party-games-analysis/internal/domain"
	"party-games-analysis/internal/plotly"

	"github.com/dustin/go-humanize"
)

const ccuTitle = "Monthly Peak CCU by Game (Fall Guys excluded)"

// CCUFigure draws one line per game over (month, peak CCU) and, when the
// flagship game is present, marks its highest month.
func CCUFigure(records []domain.CCURecord) (*plotly.Figure, int) {
	all, undated := groupSeries(records,
		func(r domain.CCURecord) string { return r.Game },
		func(r domain.CCURecord) time.Time { return r.Date },
		func(r domain.CCURecord) float64 { return float64(r.PeakCCU) },
	)

	fig := &plotly.Figure{
		Layout: plotly.Layout{
			Title:  &plotly.Title{Text: ccuTitle},
			XAxis:  &plotly.Axis{Title: &plotly.Title{Text: "Month"}, Type: "date"},
			YAxis:  &plotly.Axis{Title: &plotly.Title{Text: "Peak CCU"}},
			Legend: &plotly.Legend{Title: &plotly.Title{Text: "Game"}},
			Margin: timeSeriesMargin,
		},
	}
	for _, s := range all {
		fig.Data = append(fig.Data, lineTrace(s, func(v float64) any { return int64(v) }))
		if s.Game != constants.FlagshipGame {
			continue
		}
		if peak, ok := s.Peak(); ok {
			text := fmt.Sprintf("%s peak ≈ %s CCU", constants.FlagshipGame, humanize.Comma(int64(peak.Value)))
			fig.Layout.Annotations = append(fig.Layout.Annotations,
				peakAnnotation(monthAxisValue(peak.Date), int64(peak.Value), text, nil, -40, 11))
		}
	}
	return plotly.ApplyDarkTheme(fig), undated
}

func (r *Renderer) CCU(records []domain.CCURecord) (*Chart, error) {
	fig, undated := CCUFigure(records)
	if undated > 0 {
		r.logger.Warn().Int("rows", undated).Msg("undated CCU rows left off the chart")
	}
	return r.write(fig, ccuTitle, constants.CCUChartFile)
}

func lineTrace(s series, value func(float64) any) plotly.Trace {
	t := plotly.Trace{
		Type: "scatter",
		Mode: "lines",
		Name: s.Game,
		X:    make([]any, len(s.Points)),
		Y:    make([]any, len(s.Points)),
		Line: &plotly.Line{Width: 2},
	}
	for i, p := range s.Points {
		t.X[i] = monthAxisValue(p.Date)
		t.Y[i] = value(p.Value)
	}
	return t
}
