package components

import (
	"membership-portal/internal/handler"
	"membership-portal/internal/handler/api"
	"membership-portal/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewMemberHandler,
		api.NewDuesHandler,
		api.NewCampaignHandler,
		api.NewRedemptionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
