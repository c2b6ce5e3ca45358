package bootstrap

import (
	"go.uber.org/fx"

	"parking-facility/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.LotConfig { return cfg.Lot },
		func(cfg config.Config) config.RatesConfig { return cfg.Rates },
		func(cfg config.Config) config.StaffConfig { return cfg.Staff },
	),
)
