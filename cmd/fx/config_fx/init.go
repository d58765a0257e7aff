package config_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"vivu/internal/config"
	"vivu/pkg/itinerary"
	"vivu/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		provideConfig,
		provideLogger,
		provideLocation,
		provideCalculator,
	),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log.Named("fx")}
	}),
)

func provideConfig() (*config.Config, error) {
	return config.Load()
}

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := utils.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	restore := zap.ReplaceGlobals(log)
	lc.Append(fx.StopHook(func() {
		restore()
		_ = log.Sync()
	}))
	return log, nil
}

func provideLocation(cfg *config.Config) *time.Location {
	return utils.LoadLocation(cfg.Timezone)
}

func provideCalculator(cfg *config.Config, loc *time.Location) *itinerary.Calculator {
	calc := itinerary.NewCalculator(loc)
	calc.MaxDays = cfg.MaxTripDays
	return calc
}
