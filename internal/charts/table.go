package charts

import (
	"party-games-analysis/internal/constants"
	"party-games-analysis/internal/domain"
	"party-games-analysis/internal/plotly"

	"github.com/shopspring/decimal"
)

const tableTitle = "Estimated Lifetime Sales & Revenue by Game<br>" +
	"(Positive Reviews × 30, 50% of current Steam price)"

var tableHeader = []string{
	"Game",
	"Est. Units (k)",
	"Price used (£)",
	"Realised price (50%)",
	"Est. Revenue (£m)",
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).RoundBank(places).InexactFloat64()
}

// TableFigure lays the summary out as a black grid, one row per game in
// summary order.
func TableFigure(rows []domain.Summary) *plotly.Figure {
	games := make([]any, len(rows))
	units := make([]any, len(rows))
	prices := make([]any, len(rows))
	realised := make([]any, len(rows))
	revenue := make([]any, len(rows))
	for i, s := range rows {
		games[i] = s.Game
		units[i] = round(s.UnitsThousands, 1)
		prices[i] = round(s.Price, 2)
		realised[i] = round(s.RealisedPrice, 2)
		revenue[i] = round(s.RevenueMillions, 1)
	}

	trace := plotly.Trace{
		Type: "table",
		Header: &plotly.TableSection{
			Values: tableHeader,
			Fill:   &plotly.Fill{Color: "black"},
			Line:   &plotly.Line{Color: "white"},
			Font:   &plotly.Font{Color: "white", Size: 13},
			Align:  "left",
		},
		Cells: &plotly.TableSection{
			Values: [][]any{games, units, prices, realised, revenue},
			Fill:   &plotly.Fill{Color: "black"},
			Line:   &plotly.Line{Color: "#555555"},
			Font:   &plotly.Font{Color: "white", Size: 12},
			Align:  "left",
		},
	}

	return &plotly.Figure{
		Data: []plotly.Trace{trace},
		Layout: plotly.Layout{
			Title:        &plotly.Title{Text: tableTitle},
			PlotBGColor:  "black",
			PaperBGColor: "black",
			Font:         &plotly.Font{Color: "white"},
			Margin:       &plotly.Margin{L: 20, R: 20, T: 70, B: 20},
		},
	}
}

func (r *Renderer) Table(rows []domain.Summary) (*Chart, error) {
	return r.write(TableFigure(rows), "Estimated Lifetime Sales & Revenue by Game", constants.SummaryTableFile)
}
