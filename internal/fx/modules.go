package fx

import (
	"party-games-analysis/internal/charts"
	"party-games-analysis/internal/config"
	"party-games-analysis/internal/logger"
	"party-games-analysis/internal/pricing"
	"party-games-analysis/internal/repository"
	"party-games-analysis/internal/service"

	"go.uber.org/fx"
)

// Module needs a config.Overrides supplied by the caller.
var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(pricing.New),
	// repos
	fx.Provide(repository.NewDatasetRepository),
	fx.Provide(repository.NewSummaryRepository),
	// svc
	fx.Provide(service.NewCleanerService),
	fx.Provide(service.NewSummaryService),
	fx.Provide(charts.NewRenderer),
	fx.Provide(service.NewPipeline),
)
