package service

import (
	"errors"
	"fmt"

	"party-games-analysis/internal/constants"
	"party-games-analysis/internal/domain"

	"github.com/rs/zerolog"
)

// ErrMissingSalesSource means the sales data has no column to estimate
// monthly units from.
var ErrMissingSalesSource = errors.New("sales data needs '" + constants.ColEstSalesX30 + "' or '" + constants.ColPositiveReviews + "' column")

type CleanerService struct {
	logger zerolog.Logger
}

func NewCleanerService(logger zerolog.Logger) *CleanerService {
	return &CleanerService{logger: logger}
}

// Prepare normalises the game column, drops the excluded game from both
// tables and guarantees an est_sales_x30 column on sales. Inputs are left
// untouched.
func (s *CleanerService) Prepare(ccu, sales *domain.Table) (*domain.Table, *domain.Table, error) {
	ccu = normaliseGameColumn(ccu.Clone())
	sales = normaliseGameColumn(sales.Clone())

	ccuClean := excludeGame(ccu, constants.ExcludedGame)
	salesClean := excludeGame(sales, constants.ExcludedGame)

	s.logger.Debug().
		Str("game", constants.ExcludedGame).
		Int("ccu_dropped", ccu.Len()-ccuClean.Len()).
		Int("sales_dropped", sales.Len()-salesClean.Len()).
		Msg("excluded outlier game")

	if err := ensureEstimatedSales(salesClean); err != nil {
		s.logger.Error().Err(err).Strs("columns", salesClean.Columns).Msg("cannot estimate monthly sales")
		return nil, nil, err
	}

	s.logger.Info().
		Int("ccu_rows", ccuClean.Len()).
		Int("sales_rows", salesClean.Len()).
		Msg("datasets prepared")
	return ccuClean, salesClean, nil
}

func normaliseGameColumn(t *domain.Table) *domain.Table {
	if !t.HasColumn(constants.ColGame) && t.HasColumn(constants.ColGameAlt) {
		t.RenameColumn(constants.ColGameAlt, constants.ColGame)
	}
	return t
}

func excludeGame(t *domain.Table, game string) *domain.Table {
	return t.Filter(func(row domain.Row) bool {
		return row[constants.ColGame] != game
	})
}

func ensureEstimatedSales(t *domain.Table) error {
	if t.HasColumn(constants.ColEstSalesX30) {
		return nil
	}
	if !t.HasColumn(constants.ColPositiveReviews) {
		return ErrMissingSalesSource
	}

	i := 0
	return t.SetColumn(constants.ColEstSalesX30, func(row domain.Row) (string, error) {
		i++
		reviews, err := domain.ParseNumber(row[constants.ColPositiveReviews])
		if err != nil {
			return "", fmt.Errorf("row %d: invalid %s: %w", i, constants.ColPositiveReviews, err)
		}
		return domain.FormatNumber(reviews * constants.ReviewMultiplier), nil
	})
}
