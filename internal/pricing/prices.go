// Package pricing holds the list-price table used to turn unit estimates
// into revenue.
package pricing

import (
	"fmt"
	"maps"
	"os"

	"party-games-analysis/internal/config"
	"party-games-analysis/internal/domain"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Current Steam store prices in GBP, not realised prices.
var steamPricesGBP = domain.PriceTable{
	"Human Fall Flat": 15.99,
	"Overcooked AYCE": 29.99,
	"Overcooked 2":    4.99,
	"Gang Beasts":     6.39,
	"Pummel Party":    12.79,
	"Overcooked":      12.99,
	"Rubber Bandits":  1.59,
	"PHOGS!":          22.49,
	"Cake Bash":       2.32,
}

// Default returns a copy of the compiled-in price table.
func Default() domain.PriceTable {
	return maps.Clone(steamPricesGBP)
}

// LoadFile reads a YAML mapping of game name to list price.
func LoadFile(path string) (domain.PriceTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read price table: %w", err)
	}

	var prices domain.PriceTable
	if err := yaml.Unmarshal(data, &prices); err != nil {
		return nil, fmt.Errorf("failed to parse price table %s: %w", path, err)
	}

	for game, price := range prices {
		if price < 0 {
			return nil, fmt.Errorf("price table %s: negative price %v for %q", path, price, game)
		}
	}
	return prices, nil
}

// New provides the compiled-in table unless the config names a price file.
func New(cfg *config.Config, logger zerolog.Logger) (domain.PriceTable, error) {
	if cfg.PriceTablePath == "" {
		prices := Default()
		logger.Debug().Int("games", len(prices)).Msg("using built-in price table")
		return prices, nil
	}

	prices, err := LoadFile(cfg.PriceTablePath)
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.PriceTablePath).Msg("failed to load price table")
		return nil, err
	}
	logger.Info().Str("path", cfg.PriceTablePath).Int("games", len(prices)).Msg("price table loaded")
	return prices, nil
}
