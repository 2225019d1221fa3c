package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "tourdesk/docs"
	"tourdesk/internal/handlers/auth"
	"tourdesk/internal/handlers/booking"
	"tourdesk/internal/handlers/capacity"
	"tourdesk/internal/handlers/dashboard"
	"tourdesk/internal/handlers/driver"
	"tourdesk/internal/handlers/pricing"
	"tourdesk/internal/handlers/review"
	"tourdesk/internal/handlers/testimonial"
	"tourdesk/internal/handlers/user"
	"tourdesk/transport/http/middleware"
	"tourdesk/transport/http/response"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Pricing     pricing.Handler
	Capacity    capacity.Handler
	Booking     booking.Handler
	Driver      driver.Handler
	Review      review.Handler
	Testimonial testimonial.Handler
	Dashboard   dashboard.Handler
	User        user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.AuthRole
}

func (r *Router) SetupRoutes(mux *chi.Mux) {
	mux.Use(r.AppMiddleware.CORS)
	mux.Use(r.AppMiddleware.Tracing)
	mux.Use(r.AppMiddleware.RateLimit())

	mux.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessage(w, http.StatusOK, "OK")
	})

	mux.Get("/swagger/*", httpSwagger.WrapHandler)

	mux.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthMiddleware.Auth)
		routerGroup.Use(r.AuthMiddleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Capacity.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Driver.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Testimonial.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}
