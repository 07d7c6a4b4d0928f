package components

import (
	"aerotrav/internal/handler"
	"aerotrav/internal/handler/api"
	"aerotrav/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPreferenceHandler,
		api.NewRecommendationHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewBookingHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth           *api.AuthHandler
	Preference     *api.PreferenceHandler
	Recommendation *api.RecommendationHandler
	Cart           *api.CartHandler
	Checkout       *api.CheckoutHandler
	Booking        *api.BookingHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:           p.Auth,
		Preference:     p.Preference,
		Recommendation: p.Recommendation,
		Cart:           p.Cart,
		Checkout:       p.Checkout,
		Booking:        p.Booking,
	}
}
