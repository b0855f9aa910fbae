package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"party-games-analysis/internal/config"
	"party-games-analysis/internal/constants"
	"party-games-analysis/internal/domain"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

var summaryHeader = []string{
	"game",
	"estimated_units",
	"price_gbp",
	"realised_price_gbp",
	"revenue_gbp",
	"revenue_m_gbp",
	"units_k",
}

type SummaryRepository struct {
	cfg    *config.Config
	logger zerolog.Logger
}

func NewSummaryRepository(cfg *config.Config, logger zerolog.Logger) *SummaryRepository {
	return &SummaryRepository{cfg: cfg, logger: logger}
}

// SavedSummary lists the files written for one summary.
type SavedSummary struct {
	CSVPath  string
	XLSXPath string
}

// Save writes the summary as CSV and as a single-sheet workbook, keeping row
// order.
func (r *SummaryRepository) Save(ctx context.Context, rows []domain.Summary) (*SavedSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	saved := &SavedSummary{
		CSVPath:  r.cfg.OutPath(constants.SummaryCSVFile),
		XLSXPath: r.cfg.OutPath(constants.SummaryXLSXFile),
	}

	if err := writeSummaryCSV(saved.CSVPath, rows); err != nil {
		r.logger.Error().Err(err).Str("path", saved.CSVPath).Msg("failed to write summary csv")
		return nil, fmt.Errorf("failed to write summary csv: %w", err)
	}
	if err := writeSummaryXLSX(saved.XLSXPath, rows); err != nil {
		r.logger.Error().Err(err).Str("path", saved.XLSXPath).Msg("failed to write summary workbook")
		return nil, fmt.Errorf("failed to write summary workbook: %w", err)
	}

	r.logger.Info().
		Str("csv", saved.CSVPath).
		Str("xlsx", saved.XLSXPath).
		Int("games", len(rows)).
		Msg("summary saved")
	return saved, nil
}

func summaryRecord(s domain.Summary) []string {
	return []string{
		s.Game,
		domain.FormatNumber(s.EstimatedUnits),
		domain.FormatNumber(s.Price),
		domain.FormatNumber(s.RealisedPrice),
		domain.FormatNumber(s.Revenue),
		domain.FormatNumber(s.RevenueMillions),
		domain.FormatNumber(s.UnitsThousands),
	}
}

func writeSummaryCSV(path string, rows []domain.Summary) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.OutputFilePerm)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(summaryHeader); err != nil {
		return err
	}
	for _, s := range rows {
		if err := w.Write(summaryRecord(s)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func writeSummaryXLSX(path string, rows []domain.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := constants.SummarySheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := make([]interface{}, len(summaryHeader))
	for i, h := range summaryHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(summaryHeader), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return err
	}

	for i, s := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			s.Game,
			s.EstimatedUnits,
			s.Price,
			s.RealisedPrice,
			s.Revenue,
			s.RevenueMillions,
			s.UnitsThousands,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
