package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"party-games-analysis/internal/constants"
	"party-games-analysis/internal/domain"
	"party-games-analysis/internal/repository"

	"github.com/rs/zerolog"
)

type SummaryService struct {
	prices domain.PriceTable
	repo   *repository.SummaryRepository
	logger zerolog.Logger
}

func NewSummaryService(prices domain.PriceTable, repo *repository.SummaryRepository, logger zerolog.Logger) *SummaryService {
	return &SummaryService{prices: prices, repo: repo, logger: logger}
}

// Build aggregates lifetime units per game, prices them and saves the result.
// Rows are ordered biggest seller first.
func (s *SummaryService) Build(ctx context.Context, sales []domain.SalesRecord) ([]domain.Summary, *repository.SavedSummary, error) {
	rows := s.Summarise(sales)

	saved, err := s.repo.Save(ctx, rows)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save summary: %w", err)
	}
	return rows, saved, nil
}

// Summarise is Build without the side effect of writing files.
func (s *SummaryService) Summarise(sales []domain.SalesRecord) []domain.Summary {
	units := LifetimeUnits(sales)

	rows := make([]domain.Summary, 0, len(units))
	var unpriced []string
	for _, u := range units {
		price, ok := s.prices.Lookup(u.Game)
		if !ok {
			unpriced = append(unpriced, u.Game)
			continue
		}
		rows = append(rows, NewSummary(u.Game, u.Units, price))
	}

	if len(unpriced) > 0 {
		s.logger.Warn().Strs("games", unpriced).Msg("games without a list price left out of the summary")
	}
	s.logger.Info().Int("games", len(rows)).Msg("revenue summary built")
	return rows
}

type GameUnits struct {
	Game  string
	Units float64
}

// LifetimeUnits sums est_sales_x30 per game, largest total first. Equal
// totals are ordered by name so runs are repeatable.
func LifetimeUnits(sales []domain.SalesRecord) []GameUnits {
	totals := make(map[string]float64)
	var order []string
	for _, r := range sales {
		if _, seen := totals[r.Game]; !seen {
			order = append(order, r.Game)
		}
		totals[r.Game] += r.EstSalesX30
	}

	out := make([]GameUnits, 0, len(order))
	for _, g := range order {
		out = append(out, GameUnits{Game: g, Units: totals[g]})
	}
	slices.SortStableFunc(out, func(a, b GameUnits) int {
		if c := cmp.Compare(b.Units, a.Units); c != 0 {
			return c
		}
		return cmp.Compare(a.Game, b.Game)
	})
	return out
}

func NewSummary(game string, units, price float64) domain.Summary {
	realised := price * constants.RealisationRate
	revenue := units * realised
	return domain.Summary{
		Game:            game,
		EstimatedUnits:  units,
		Price:           price,
		RealisedPrice:   realised,
		Revenue:         revenue,
		RevenueMillions: revenue / constants.RevenueScale,
		UnitsThousands:  units / constants.UnitsScale,
	}
}
