package charts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"party-games-analysis/internal/config"
	"party-games-analysis/internal/constants"
	"party-games-analysis/internal/domain"
	"party-games-analysis/internal/plotly"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func month(y, m int) time.Time {
	return time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
}

func assertDarkTheme(t *testing.T, fig *plotly.Figure) {
	t.Helper()
	assert.Equal(t, "black", fig.Layout.PlotBGColor)
	assert.Equal(t, "black", fig.Layout.PaperBGColor)
	require.NotNil(t, fig.Layout.Font)
	assert.Equal(t, "white", fig.Layout.Font.Color)
	for _, axis := range []*plotly.Axis{fig.Layout.XAxis, fig.Layout.YAxis} {
		require.NotNil(t, axis)
		assert.True(t, axis.ShowLine)
		assert.True(t, axis.Mirror)
		assert.Equal(t, "white", axis.LineColor)
		assert.Equal(t, "#333333", axis.GridColor)
	}
}

func TestCCUFigureAnnotatesFlagshipPeak(t *testing.T) {
	records := []domain.CCURecord{
		{Game: "Gang Beasts", Date: month(2021, 1), PeakCCU: 90000},
		{Game: constants.FlagshipGame, Date: month(2021, 2), PeakCCU: 52345},
		{Game: constants.FlagshipGame, Date: month(2021, 1), PeakCCU: 40000},
		{Game: constants.FlagshipGame, Date: time.Time{}, PeakCCU: 999999},
	}

	fig, undated := CCUFigure(records)
	assert.Equal(t, 1, undated)
	require.Len(t, fig.Data, 2)
	assert.Equal(t, "Gang Beasts", fig.Data[0].Name)

	flagship := fig.Data[1]
	assert.Equal(t, []any{"2021-01-01", "2021-02-01"}, flagship.X)
	assert.Equal(t, []any{int64(40000), int64(52345)}, flagship.Y)

	require.Len(t, fig.Layout.Annotations, 1)
	a := fig.Layout.Annotations[0]
	assert.Equal(t, "2021-02-01", a.X)
	assert.Equal(t, int64(52345), a.Y)
	assert.Equal(t, "Human Fall Flat peak ≈ 52,345 CCU", a.Text)

	assertDarkTheme(t, fig)
	assert.Equal(t, "Month", fig.Layout.XAxis.Title.Text)
	assert.Equal(t, "Peak CCU", fig.Layout.YAxis.Title.Text)
}

func TestCCUFigureWithoutFlagship(t *testing.T) {
	fig, _ := CCUFigure([]domain.CCURecord{{Game: "Gang Beasts", Date: month(2021, 1), PeakCCU: 1}})
	assert.Empty(t, fig.Layout.Annotations)
}

func TestSalesFigureAnnotatesEveryGamePeak(t *testing.T) {
	records := []domain.SalesRecord{
		{Game: "B", Date: month(2020, 1), EstSalesX30: 300},
		{Game: "B", Date: month(2020, 2), EstSalesX30: 1200},
		{Game: "A", Date: month(2020, 1), EstSalesX30: 45000},
		{Game: "A", Date: month(2020, 2), EstSalesX30: 45000},
		{Game: "A", Date: month(2020, 3), EstSalesX30: 30},
	}

	fig, undated := SalesFigure(records)
	assert.Zero(t, undated)
	require.Len(t, fig.Data, 2)
	assert.Equal(t, "B", fig.Data[0].Name)

	require.Len(t, fig.Layout.Annotations, 2)
	a, b := fig.Layout.Annotations[0], fig.Layout.Annotations[1]
	assert.Equal(t, "2020-01-01", a.X)
	assert.Equal(t, 45000.0, a.Y)
	assert.Equal(t, "45,000", a.Text)
	assert.Equal(t, "2020-02-01", b.X)
	assert.Equal(t, "1,200", b.Text)
	require.NotNil(t, a.AX)
	assert.Zero(t, *a.AX)

	assertDarkTheme(t, fig)
}

func summaryRows() []domain.Summary {
	return []domain.Summary{
		// biggest seller but cheap
		{Game: "Cheap", EstimatedUnits: 1_000_000, Price: 1, RealisedPrice: 0.5, Revenue: 500_000, RevenueMillions: 0.5, UnitsThousands: 1000},
		{Game: "Pricey", EstimatedUnits: 200_000, Price: 30, RealisedPrice: 15, Revenue: 3_000_000, RevenueMillions: 3, UnitsThousands: 200},
		{Game: "Mid", EstimatedUnits: 123_456, Price: 12.79, RealisedPrice: 6.395, Revenue: 789_501.12, RevenueMillions: 0.78950112, UnitsThousands: 123.456},
	}
}

func TestRevenueFigureOrdersByRevenue(t *testing.T) {
	fig := RevenueFigure(summaryRows())

	require.Len(t, fig.Data, 1)
	bars := fig.Data[0]
	assert.Equal(t, "bar", bars.Type)
	assert.Equal(t, []any{"Pricey", "Mid", "Cheap"}, bars.X)
	assert.Equal(t, []any{3.0, 0.78950112, 0.5}, bars.Y)
	assert.Equal(t, []string{"Pricey", "Mid", "Cheap"}, fig.Layout.XAxis.CategoryArray)
	assert.Equal(t, []string{"200k units<br>£3.0m", "123k units<br>£0.8m", "1000k units<br>£0.5m"}, bars.Text)
	assert.Equal(t, "outside", bars.TextPosition)

	assertDarkTheme(t, fig)
}

func TestTableFigureRoundsCells(t *testing.T) {
	fig := TableFigure(summaryRows())

	require.Len(t, fig.Data, 1)
	cells := fig.Data[0].Cells
	require.NotNil(t, cells)
	cols, ok := cells.Values.([][]any)
	require.True(t, ok)
	require.Len(t, cols, 5)

	assert.Equal(t, []any{"Cheap", "Pricey", "Mid"}, cols[0])
	assert.Equal(t, 123.5, cols[1][2])
	assert.Equal(t, 12.79, cols[2][2])
	assert.Equal(t, 6.4, cols[3][2])
	assert.Equal(t, 0.8, cols[4][2])
	assert.Equal(t, tableHeader, fig.Data[0].Header.Values)
	assert.Equal(t, "black", fig.Layout.PaperBGColor)
}

func TestTableFigureJSONUsesNestedColors(t *testing.T) {
	data, err := json.Marshal(TableFigure(summaryRows()))
	require.NoError(t, err)

	var fig struct {
		Data []struct {
			Header map[string]json.RawMessage `json:"header"`
			Cells  map[string]json.RawMessage `json:"cells"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &fig))
	require.Len(t, fig.Data, 1)

	color := func(section map[string]json.RawMessage, key string) string {
		t.Helper()
		var v struct {
			Color string `json:"color"`
		}
		require.Contains(t, section, key)
		require.NoError(t, json.Unmarshal(section[key], &v))
		return v.Color
	}

	header, cells := fig.Data[0].Header, fig.Data[0].Cells
	assert.Equal(t, "black", color(header, "fill"))
	assert.Equal(t, "white", color(header, "line"))
	assert.Equal(t, "black", color(cells, "fill"))
	assert.Equal(t, "#555555", color(cells, "line"))
	assert.NotContains(t, string(data), "fill_color")
	assert.NotContains(t, string(data), "line_color")
}

func TestRevenueLabelRoundsHalfToEven(t *testing.T) {
	tests := []struct {
		units, revenue float64
		want           string
	}{
		{units: 0.5, revenue: 0.05, want: "0k units<br>£0.0m"},
		{units: 1.5, revenue: 0.15, want: "2k units<br>£0.2m"},
		{units: 2.5, revenue: 0.25, want: "2k units<br>£0.2m"},
		{units: 123.456, revenue: 0.78950112, want: "123k units<br>£0.8m"},
	}
	for _, tt := range tests {
		got := RevenueLabel(domain.Summary{UnitsThousands: tt.units, RevenueMillions: tt.revenue})
		assert.Equal(t, tt.want, got)
	}
}

func TestTableCellsRoundHalfToEven(t *testing.T) {
	assert.Equal(t, 0.2, round(0.25, 1))
	assert.Equal(t, 0.4, round(0.35, 1))
	assert.Equal(t, 2.0, round(2.5, 0))
	assert.Equal(t, 6.4, round(6.395, 2))
}

func TestRendererWritesStandaloneFiles(t *testing.T) {
	cfg := &config.Config{OutDir: t.TempDir()}
	r := NewRenderer(cfg, zerolog.Nop())

	rev, err := r.Revenue(summaryRows())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.OutDir, constants.RevenueChartFile), rev.Path)

	tbl, err := r.Table(summaryRows())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.OutDir, constants.SummaryTableFile), tbl.Path)

	data, err := os.ReadFile(rev.Path)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, constants.PlotlyScriptSource)
	assert.Contains(t, html, "Plotly.newPlot(")
	assert.True(t, strings.Contains(html, plotly.ElementID(rev.Path)))
}

func TestRendererFailsOnMissingDir(t *testing.T) {
	cfg := &config.Config{OutDir: filepath.Join(t.TempDir(), "missing")}
	_, err := NewRenderer(cfg, zerolog.Nop()).Sales(nil)
	require.Error(t, err)
}
