package components

import (
	"decor-rental/internal/handler"
	"decor-rental/internal/handler/api"
	reqdto "decor-rental/internal/handler/dto/request"
	"decor-rental/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewInventoryHandler,
		api.NewBookingHandler,
		api.NewPackageHandler,
		api.NewMessageHandler,
		api.NewTestimonialHandler,
		api.NewSiteHandler,
		api.NewUserHandler,
		api.NewReportHandler,
		api.NewBackupHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(
		reqdto.RegisterValidators,
		handler.NewRouter,
	),
)
