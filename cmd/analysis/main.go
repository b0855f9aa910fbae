package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"party-games-analysis/internal/config"
	"party-games-analysis/internal/constants"
	fxmodules "party-games-analysis/internal/fx"
	"party-games-analysis/internal/service"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var overrides config.Overrides

var rootCmd = &cobra.Command{
	Use:   "analysis",
	Short: "Build the party-game sales and revenue report",
	Long: `Loads monthly peak-CCU and review history, estimates unit sales
(positive reviews x 30) and lifetime revenue (50% of current Steam price),
then writes the summary, four interactive charts and a 4-up dashboard.

Run without arguments to use the configured inputs and output directory.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runAnalysis,
}

func init() {
	rootCmd.Flags().StringVar(&overrides.CCUPath, "ccu", "", "CCU history CSV (overrides CCU_CSV)")
	rootCmd.Flags().StringVar(&overrides.SalesPath, "sales", "", "sales/review history CSV (overrides SALES_CSV)")
	rootCmd.Flags().StringVar(&overrides.OutDir, "out", "", "output directory (overrides OUT_DIR)")
	rootCmd.Flags().StringVar(&overrides.PriceTablePath, "prices", "", "YAML price table (overrides PRICE_TABLE_PATH)")
	rootCmd.Flags().StringVar(&overrides.LogLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runAnalysis(cmd *cobra.Command, _ []string) error {
	var result *service.Result

	app := fx.New(
		fxmodules.Module,
		fx.Supply(overrides),
		fx.NopLogger,
		fx.StartTimeout(constants.StartTimeout),
		fx.StopTimeout(constants.ShutdownTimeout),
		fx.Invoke(func(lc fx.Lifecycle, pipeline *service.Pipeline, logger zerolog.Logger) {
			registerPipeline(lc, pipeline, logger, &result)
		}),
	)
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(cmd.Context()); err != nil {
		return err
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		return err
	}

	return service.Report(cmd.OutOrStdout(), result)
}

func registerPipeline(lc fx.Lifecycle, pipeline *service.Pipeline, logger zerolog.Logger, result **service.Result) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			res, err := pipeline.Run(ctx)
			if err != nil {
				logger.Error().Err(err).Msg("analysis failed")
				return err
			}
			*result = res
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Debug().Msg("analysis finished")
			return nil
		},
	})
}
