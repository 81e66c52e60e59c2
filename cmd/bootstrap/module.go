package bootstrap

import (
	"boat-quotes/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	PricingModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
