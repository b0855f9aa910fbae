package config

import (
	"os"
	"path/filepath"

	"party-games-analysis/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	CCUPath        string
	SalesPath      string
	OutDir         string
	LogLevel       string
	PriceTablePath string
}

// Overrides carries command-line values. Empty fields leave the environment
// or default value in place.
type Overrides struct {
	CCUPath        string
	SalesPath      string
	OutDir         string
	LogLevel       string
	PriceTablePath string
}

func Load(logger zerolog.Logger, o Overrides) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		CCUPath:        pick(o.CCUPath, getEnv("CCU_CSV", constants.DefaultCCUPath)),
		SalesPath:      pick(o.SalesPath, getEnv("SALES_CSV", constants.DefaultSalesPath)),
		OutDir:         pick(o.OutDir, getEnv("OUT_DIR", constants.DefaultOutDir)),
		LogLevel:       pick(o.LogLevel, getEnv("LOG_LEVEL", "info")),
		PriceTablePath: pick(o.PriceTablePath, getEnv("PRICE_TABLE_PATH", "")),
	}

	logger.Info().
		Str("ccu_path", cfg.CCUPath).
		Str("sales_path", cfg.SalesPath).
		Str("out_dir", cfg.OutDir).
		Str("log_level", cfg.LogLevel).
		Str("price_table_path", cfg.PriceTablePath).
		Msg("configuration loaded")

	return cfg, nil
}

// OutPath joins name onto the output directory.
func (c *Config) OutPath(name string) string {
	return filepath.Join(c.OutDir, name)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func pick(override, value string) string {
	if override != "" {
		return override
	}
	return value
}

var Module = fx.Provide(Load)
