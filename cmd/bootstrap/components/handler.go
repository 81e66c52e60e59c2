package components

import (
	"boat-quotes/internal/handler"
	"boat-quotes/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewInquiryHandler,
		api.NewDraftHandler,
	),
	fx.Invoke(handler.NewRouter),
)
