package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"party-games-analysis/internal/constants"
	"party-games-analysis/internal/domain"

	"github.com/rs/zerolog"
)

type DatasetRepository struct {
	logger zerolog.Logger
}

func NewDatasetRepository(logger zerolog.Logger) *DatasetRepository {
	return &DatasetRepository{logger: logger}
}

// Load reads a CSV file into a table. When the file has both year and month
// columns a date column holding the first day of that month is added.
func (r *DatasetRepository) Load(ctx context.Context, path string) (*domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		r.logger.Error().Err(err).Str("path", path).Msg("failed to open dataset")
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	table, err := ReadTable(f)
	if err != nil {
		r.logger.Error().Err(err).Str("path", path).Msg("failed to read dataset")
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	undated := deriveDates(table)
	if undated > 0 {
		r.logger.Warn().Str("path", path).Int("rows", undated).Msg("rows with unparseable year/month have no date")
	}

	r.logger.Info().
		Str("path", path).
		Int("rows", table.Len()).
		Strs("columns", table.Columns).
		Bool("dated", table.HasColumn(constants.ColDate)).
		Msg("dataset loaded")

	return table, nil
}

// ReadTable parses CSV with a header row. Short rows are padded with blanks.
func ReadTable(rd io.Reader) (*domain.Table, error) {
	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, err
	}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		header[i] = h
	}

	table := domain.NewTable(header)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(domain.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			} else {
				row[col] = ""
			}
		}
		table.Append(row)
	}
	return table, nil
}

// deriveDates fills the date column and reports how many rows had no usable
// year/month.
func deriveDates(t *domain.Table) int {
	if !t.HasColumn(constants.ColYear) || !t.HasColumn(constants.ColMonth) {
		return 0
	}

	undated := 0
	_ = t.SetColumn(constants.ColDate, func(row domain.Row) (string, error) {
		date, ok := monthStart(row[constants.ColYear], row[constants.ColMonth])
		if !ok {
			undated++
		}
		return date, nil
	})
	return undated
}

func monthStart(year, month string) (string, bool) {
	y, err := domain.ParseNumber(year)
	if err != nil || strings.TrimSpace(year) == "" {
		return "", false
	}
	m, err := domain.ParseNumber(month)
	if err != nil || strings.TrimSpace(month) == "" {
		return "", false
	}
	yi, mi := int(math.Trunc(y)), int(math.Trunc(m))
	if mi < 1 || mi > 12 || yi < 1 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-01", yi, mi), true
}
