package domain

import (
	"time"
)

type CCURecord struct {
	Game    string
	Date    time.Time // zero when the source row had no year/month
	PeakCCU int64
}

type SalesRecord struct {
	Game        string
	Date        time.Time
	EstSalesX30 float64
}

type Summary struct {
	Game            string
	EstimatedUnits  float64
	Price           float64 // current list price, GBP
	RealisedPrice   float64
	Revenue         float64
	RevenueMillions float64
	UnitsThousands  float64
}

// PriceTable maps a game name to its current list price in GBP.
type PriceTable map[string]float64

func (p PriceTable) Lookup(game string) (float64, bool) {
	price, ok := p[game]
	return price, ok
}
