package charts

import (
	"slices"
	"time"
)

// point is one (month, value) observation of a game.
type point struct {
	Date  time.Time
	Value float64
}

// series is one game's observations in month order.
type series struct {
	Game   string
	Points []point
}

// Peak returns the highest point; on ties the earliest month wins.
func (s series) Peak() (point, bool) {
	if len(s.Points) == 0 {
		return point{}, false
	}
	best := s.Points[0]
	for _, p := range s.Points[1:] {
		if p.Value > best.Value {
			best = p
		}
	}
	return best, true
}

// groupSeries splits observations by game in order of first appearance,
// dropping undated rows, and sorts each series by month.
func groupSeries[T any](rows []T, game func(T) string, date func(T) time.Time, value func(T) float64) (out []series, undated int) {
	index := make(map[string]int)
	for _, row := range rows {
		d := date(row)
		if d.IsZero() {
			undated++
			continue
		}
		g := game(row)
		i, ok := index[g]
		if !ok {
			i = len(out)
			index[g] = i
			out = append(out, series{Game: g})
		}
		out[i].Points = append(out[i].Points, point{Date: d, Value: value(row)})
	}
	for i := range out {
		slices.SortStableFunc(out[i].Points, func(a, b point) int {
			return a.Date.Compare(b.Date)
		})
	}
	return out, undated
}
