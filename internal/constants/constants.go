package constants

import "time"

const (
	DefaultCCUPath   = "CCU_V10(CCU_All_Games).csv"
	DefaultSalesPath = "Chart2_Master.csv"
	DefaultOutDir    = "outputs"
)

const (
	SummaryCSVFile     = "Chart3_Summary_Units_Revenue.csv"
	SummaryXLSXFile    = "Chart3_Summary_Units_Revenue.xlsx"
	CCUChartFile       = "CCU_Interactive_NoFG.html"
	SalesChartFile     = "Chart2_Interactive_NoFG_Sales.html"
	RevenueChartFile   = "Chart3_Total_Revenue_Interactive.html"
	SummaryTableFile   = "Chart1_Sales_Revenue_Table.html"
	DashboardFile      = "Party_Game_4up_Dashboard.html"
	SummarySheetName   = "Summary"
	OutputDirPerm      = 0o755
	OutputFilePerm     = 0o644
	PlotlyScriptSource = "https://cdn.plot.ly/plotly-2.35.2.min.js"
)

const (
	// ExcludedGame dwarfs every other title and flattens the time-series scales.
	ExcludedGame = "Fall Guys (Paid Era)"
	FlagshipGame = "Human Fall Flat"
)

const (
	RealisationRate  = 0.5
	ReviewMultiplier = 30
	UnitsScale       = 1e3
	RevenueScale     = 1e6
)

// Column names shared by the loader, cleaner and typed conversions.
const (
	ColGame            = "game"
	ColGameAlt         = "Game"
	ColYear            = "year"
	ColMonth           = "month"
	ColDate            = "date"
	ColPeakCCU         = "peak_ccu"
	ColEstSalesX30     = "est_sales_x30"
	ColPositiveReviews = "positive_reviews"
)

const DateLayout = "2006-01-02"

const (
	StartTimeout    = 10 * time.Minute
	ShutdownTimeout = 5 * time.Second
)
