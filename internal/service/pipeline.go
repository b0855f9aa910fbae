package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"party-games-analysis/internal/charts"
	"party-games-analysis/internal/config"
	"party-games-analysis/internal/constants"
	"party-games-analysis/internal/dashboard"
	"party-games-analysis/internal/domain"
	"party-games-analysis/internal/repository"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type Pipeline struct {
	cfg      *config.Config
	datasets *repository.DatasetRepository
	cleaner  *CleanerService
	summary  *SummaryService
	renderer *charts.Renderer
	logger   zerolog.Logger
}

func NewPipeline(cfg *config.Config, datasets *repository.DatasetRepository, cleaner *CleanerService, summary *SummaryService, renderer *charts.Renderer, logger zerolog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, datasets: datasets, cleaner: cleaner, summary: summary, renderer: renderer, logger: logger}
}

// Result lists everything one run produced.
type Result struct {
	OutDir       string
	SummaryCSV   string
	SummaryXLSX  string
	CCUChart     string
	SalesChart   string
	RevenueChart string
	Table        string
	Dashboard    string
	Summary      []domain.Summary
}

// Run executes load, clean, summarise, render and compose in order. The first
// failure aborts the run before any later artifact is written.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	runID, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate run id: %w", err)
	}
	logger := p.logger.With().Str("run_id", runID).Logger()
	start := time.Now()

	outDir, err := filepath.Abs(p.cfg.OutDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}
	if err := os.MkdirAll(outDir, constants.OutputDirPerm); err != nil {
		logger.Error().Err(err).Str("out_dir", outDir).Msg("failed to create output directory")
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	logger.Info().Str("out_dir", outDir).Msg("pipeline started")

	ccuTable, err := p.datasets.Load(ctx, p.cfg.CCUPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load ccu data: %w", err)
	}
	salesTable, err := p.datasets.Load(ctx, p.cfg.SalesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales data: %w", err)
	}

	ccuTable, salesTable, err = p.cleaner.Prepare(ccuTable, salesTable)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare data: %w", err)
	}

	ccu, err := domain.CCURecordsFromTable(ccuTable)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.cfg.CCUPath, err)
	}
	sales, err := domain.SalesRecordsFromTable(salesTable)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.cfg.SalesPath, err)
	}

	summary, saved, err := p.summary.Build(ctx, sales)
	if err != nil {
		return nil, err
	}

	res := &Result{
		OutDir:      outDir,
		SummaryCSV:  saved.CSVPath,
		SummaryXLSX: saved.XLSXPath,
		Summary:     summary,
	}

	if err := p.render(ctx, res, ccu, sales, summary); err != nil {
		logger.Error().Err(err).Msg("rendering failed")
		return nil, err
	}

	res.Dashboard, err = dashboard.Compose(p.cfg.OutDir, dashboard.Panels{
		Table:   res.Table,
		Sales:   res.SalesChart,
		CCU:     res.CCUChart,
		Revenue: res.RevenueChart,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to compose dashboard")
		return nil, err
	}

	logger.Info().
		Int("games", len(summary)).
		Dur("duration", time.Since(start)).
		Msg("pipeline completed")
	return res, nil
}

func (p *Pipeline) render(ctx context.Context, res *Result, ccu []domain.CCURecord, sales []domain.SalesRecord, summary []domain.Summary) error {
	steps := []struct {
		dst  *string
		draw func() (*charts.Chart, error)
	}{
		{&res.CCUChart, func() (*charts.Chart, error) { return p.renderer.CCU(ccu) }},
		{&res.SalesChart, func() (*charts.Chart, error) { return p.renderer.Sales(sales) }},
		{&res.RevenueChart, func() (*charts.Chart, error) { return p.renderer.Revenue(summary) }},
		{&res.Table, func() (*charts.Chart, error) { return p.renderer.Table(summary) }},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("failed to render charts: %w", err)
		}
		chart, err := step.draw()
		if err != nil {
			return fmt.Errorf("failed to render charts: %w", err)
		}
		*step.dst = chart.Path
	}
	return nil
}

// Report prints where the run wrote its outputs.
func Report(w io.Writer, res *Result) error {
	lines := []struct {
		label string
		path  string
	}{
		{"Summary CSV", res.SummaryCSV},
		{"Summary workbook", res.SummaryXLSX},
		{"CCU chart", res.CCUChart},
		{"Sales chart", res.SalesChart},
		{"Revenue chart", res.RevenueChart},
		{"Sales/revenue table", res.Table},
		{"4-up dashboard", res.Dashboard},
	}

	if _, err := fmt.Fprintln(w, "Outputs written to:", res.OutDir); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, " - %s: %s\n", l.label, l.path); err != nil {
			return err
		}
	}
	return nil
}
