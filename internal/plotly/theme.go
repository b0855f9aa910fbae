package plotly

const (
	themeBackground = "black"
	themeForeground = "white"
	themeGrid       = "#333333"
)

// ApplyDarkTheme gives fig the black report theme: black backgrounds, white
// text and mirrored white axis lines over dark gridlines. Axis titles already
// set on fig are kept.
func ApplyDarkTheme(fig *Figure) *Figure {
	fig.Layout.PlotBGColor = themeBackground
	fig.Layout.PaperBGColor = themeBackground
	fig.Layout.Font = &Font{Color: themeForeground}
	fig.Layout.XAxis = darkAxis(fig.Layout.XAxis)
	fig.Layout.YAxis = darkAxis(fig.Layout.YAxis)
	return fig
}

func darkAxis(a *Axis) *Axis {
	if a == nil {
		a = &Axis{}
	}
	a.ShowLine = true
	a.LineWidth = 1
	a.LineColor = themeForeground
	a.Mirror = true
	a.GridColor = themeGrid
	return a
}
