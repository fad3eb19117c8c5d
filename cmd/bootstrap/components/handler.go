package components

import (
	"webnebula-api/internal/handler"
	"webnebula-api/internal/handler/api"
	"webnebula-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFormHandler,
		middleware.NewCSRFMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
