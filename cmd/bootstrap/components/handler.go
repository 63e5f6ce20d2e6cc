package components

import (
	"soundlight-quotes/internal/handler"
	"soundlight-quotes/internal/handler/api"
	"soundlight-quotes/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWizardHandler,
		api.NewBookingHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
