//go:build wireinject
// +build wireinject

package di

import (
	"tourdesk/config"
	"tourdesk/infras/jwt"
	"tourdesk/infras/otel"
	"tourdesk/infras/postgres"
	"tourdesk/infras/redis"
	"tourdesk/infras/s3"
	"tourdesk/internal/integrations/mailer"
	"tourdesk/permissions"
	"tourdesk/shared/cache"
	"tourdesk/transport/http"
	"tourdesk/transport/http/middleware"
	"tourdesk/transport/http/router"

	"github.com/google/wire"

	bookingRepository "tourdesk/internal/domains/booking/repository"
	bookingService "tourdesk/internal/domains/booking/service"
	capacityRepository "tourdesk/internal/domains/capacity/repository"
	capacityService "tourdesk/internal/domains/capacity/service"
	dashboardService "tourdesk/internal/domains/dashboard/service"
	driverRepository "tourdesk/internal/domains/driver/repository"
	driverService "tourdesk/internal/domains/driver/service"
	pricingRepository "tourdesk/internal/domains/pricing/repository"
	pricingService "tourdesk/internal/domains/pricing/service"
	reviewRepository "tourdesk/internal/domains/review/repository"
	reviewService "tourdesk/internal/domains/review/service"
	testimonialRepository "tourdesk/internal/domains/testimonial/repository"
	testimonialService "tourdesk/internal/domains/testimonial/service"
	userRepository "tourdesk/internal/domains/user/repository"
	userService "tourdesk/internal/domains/user/service"

	authService "tourdesk/internal/domains/auth/service"

	authHandler "tourdesk/internal/handlers/auth"
	bookingHandler "tourdesk/internal/handlers/booking"
	capacityHandler "tourdesk/internal/handlers/capacity"
	dashboardHandler "tourdesk/internal/handlers/dashboard"
	driverHandler "tourdesk/internal/handlers/driver"
	pricingHandler "tourdesk/internal/handlers/pricing"
	reviewHandler "tourdesk/internal/handlers/review"
	testimonialHandler "tourdesk/internal/handlers/testimonial"
	userHandler "tourdesk/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var integrations = wire.NewSet(
	mailer.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.New,
	pricingService.New,
)

var capacityDomain = wire.NewSet(
	capacityRepository.New,
	capacityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var driverDomain = wire.NewSet(
	driverRepository.New,
	driverService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var testimonialDomain = wire.NewSet(
	testimonialRepository.New,
	testimonialService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	pricingDomain,
	capacityDomain,
	bookingDomain,
	driverDomain,
	reviewDomain,
	testimonialDomain,
	dashboardDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	pricingHandler.New,
	capacityHandler.New,
	bookingHandler.New,
	driverHandler.New,
	reviewHandler.New,
	testimonialHandler.New,
	dashboardHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		integrations,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
