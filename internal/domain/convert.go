package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"party-games-analysis/internal/constants"
)

var ErrMissingColumn = errors.New("missing required column")

func requireColumns(t *Table, cols ...string) error {
	for _, col := range cols {
		if !t.HasColumn(col) {
			return fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	return nil
}

func CCURecordsFromTable(t *Table) ([]CCURecord, error) {
	if err := requireColumns(t, constants.ColGame, constants.ColPeakCCU); err != nil {
		return nil, err
	}
	records := make([]CCURecord, 0, t.Len())
	for i, row := range t.Rows {
		peak, err := ParseNumber(row[constants.ColPeakCCU])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid %s: %w", i+1, constants.ColPeakCCU, err)
		}
		date, err := parseDate(row[constants.ColDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid %s: %w", i+1, constants.ColDate, err)
		}
		records = append(records, CCURecord{
			Game:    row[constants.ColGame],
			Date:    date,
			PeakCCU: int64(math.Trunc(peak)),
		})
	}
	return records, nil
}

func SalesRecordsFromTable(t *Table) ([]SalesRecord, error) {
	if err := requireColumns(t, constants.ColGame, constants.ColEstSalesX30); err != nil {
		return nil, err
	}
	records := make([]SalesRecord, 0, t.Len())
	for i, row := range t.Rows {
		est, err := ParseNumber(row[constants.ColEstSalesX30])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid %s: %w", i+1, constants.ColEstSalesX30, err)
		}
		date, err := parseDate(row[constants.ColDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid %s: %w", i+1, constants.ColDate, err)
		}
		records = append(records, SalesRecord{
			Game:        row[constants.ColGame],
			Date:        date,
			EstSalesX30: est,
		})
	}
	return records, nil
}

// ParseNumber parses a numeric CSV cell. Blank cells count as zero.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// FormatNumber renders v with the fewest digits that round-trip.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(constants.DateLayout, s)
}
