package components

import (
	"humipay/internal/handler"
	"humipay/internal/handler/api"
	"humipay/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewLoteHandler,
		api.NewPedidoHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
