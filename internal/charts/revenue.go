package charts

import (
	"cmp"
	"slices"

	"party-games-analysis/internal/constants"
	"party-games-analysis/internal/domain"
	"party-games-analysis/internal/plotly"

	"github.com/shopspring/decimal"
)

const revenueTitle = "Estimated Lifetime Steam Revenue by Game<br>" +
	"(Positive Reviews × 30; revenue uses 50% of current Steam store price)"

// ByRevenue returns a copy of rows ordered by descending revenue. Ties keep
// their summary order.
func ByRevenue(rows []domain.Summary) []domain.Summary {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b domain.Summary) int {
		return cmp.Compare(b.Revenue, a.Revenue)
	})
	return sorted
}

// RevenueLabel is the text drawn above a revenue bar.
func RevenueLabel(s domain.Summary) string {
	units := decimal.NewFromFloat(s.UnitsThousands).StringFixedBank(0)
	revenue := decimal.NewFromFloat(s.RevenueMillions).StringFixedBank(1)
	return units + "k units<br>£" + revenue + "m"
}

// RevenueFigure draws one bar per game, biggest earner on the left.
func RevenueFigure(rows []domain.Summary) *plotly.Figure {
	sorted := ByRevenue(rows)

	bars := plotly.Trace{
		Type: "bar",
		X:    make([]any, len(sorted)),
		Y:    make([]any, len(sorted)),
		Text: make([]string, len(sorted)),
		Marker: &plotly.Marker{
			Color: "#636EFA",
			Line:  &plotly.Line{Color: "white", Width: 1.2},
		},
		TextPosition: "outside",
	}
	order := make([]string, len(sorted))
	for i, s := range sorted {
		bars.X[i] = s.Game
		bars.Y[i] = s.RevenueMillions
		bars.Text[i] = RevenueLabel(s)
		order[i] = s.Game
	}

	fig := &plotly.Figure{
		Data: []plotly.Trace{bars},
		Layout: plotly.Layout{
			Title: &plotly.Title{Text: revenueTitle},
			XAxis: &plotly.Axis{
				Title:         &plotly.Title{Text: "Game"},
				CategoryOrder: "array",
				CategoryArray: order,
			},
			YAxis:  &plotly.Axis{Title: &plotly.Title{Text: "Estimated Lifetime Revenue (£ millions)"}},
			Margin: &plotly.Margin{L: 40, R: 40, T: 90, B: 80},
		},
	}
	return plotly.ApplyDarkTheme(fig)
}

func (r *Renderer) Revenue(rows []domain.Summary) (*Chart, error) {
	return r.write(RevenueFigure(rows), "Estimated Lifetime Steam Revenue by Game", constants.RevenueChartFile)
}
