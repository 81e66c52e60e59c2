package bootstrap

import (
	"boat-quotes/internal/domain/pricing"
	"boat-quotes/internal/pkg/config"

	"go.uber.org/fx"
)

var PricingModule = fx.Module("pricing",
	fx.Provide(
		NewPricingRules,
		pricing.NewCalculator,
	),
)

func NewPricingRules(cfg config.Config) (*pricing.Rules, error) {
	return pricing.LoadRules(cfg.Pricing.RulesPath)
}
