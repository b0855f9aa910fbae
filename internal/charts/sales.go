package charts

import (
	"slices"
	"strings"
	"time"

	"party-games-analysis/internal/constants"
	"party-games-analysis/internal/domain"
	"party-games-analysis/internal/plotly"

	"github.com/dustin/go-humanize"
)

const salesTitle = "Monthly Estimated Sales by Game (Positive Reviews × 30, Fall Guys excluded)"

// SalesFigure draws one line per game over (month, est_sales_x30) and labels
// every game's own best month.
func SalesFigure(records []domain.SalesRecord) (*plotly.Figure, int) {
	all, undated := groupSeries(records,
		func(r domain.SalesRecord) string { return r.Game },
		func(r domain.SalesRecord) time.Time { return r.Date },
		func(r domain.SalesRecord) float64 { return r.EstSalesX30 },
	)

	fig := &plotly.Figure{
		Layout: plotly.Layout{
			Title:  &plotly.Title{Text: salesTitle},
			XAxis:  &plotly.Axis{Title: &plotly.Title{Text: "Month"}, Type: "date"},
			YAxis:  &plotly.Axis{Title: &plotly.Title{Text: "Estimated Monthly Sales (units)"}},
			Legend: &plotly.Legend{Title: &plotly.Title{Text: "Game"}},
			Margin: timeSeriesMargin,
		},
	}
	for _, s := range all {
		fig.Data = append(fig.Data, lineTrace(s, func(v float64) any { return v }))
	}

	byName := slices.Clone(all)
	slices.SortFunc(byName, func(a, b series) int { return strings.Compare(a.Game, b.Game) })
	for _, s := range byName {
		peak, ok := s.Peak()
		if !ok {
			continue
		}
		fig.Layout.Annotations = append(fig.Layout.Annotations,
			peakAnnotation(monthAxisValue(peak.Date), peak.Value, humanize.Comma(int64(peak.Value)), plotly.Float(0), -30, 9))
	}
	return plotly.ApplyDarkTheme(fig), undated
}

func (r *Renderer) Sales(records []domain.SalesRecord) (*Chart, error) {
	fig, undated := SalesFigure(records)
	if undated > 0 {
		r.logger.Warn().Int("rows", undated).Msg("undated sales rows left off the chart")
	}
	return r.write(fig, salesTitle, constants.SalesChartFile)
}
