//go:build wireinject
// +build wireinject

package di

import (
	"studyspot/config"
	"studyspot/infras/localstore"
	"studyspot/infras/otel"
	"studyspot/infras/redis"
	bookingHandler "studyspot/internal/handlers/booking"
	spaceHandler "studyspot/internal/handlers/space"
	"studyspot/shared/cache"
	"studyspot/transport/http"
	"studyspot/transport/http/middleware"
	"studyspot/transport/http/router"

	identityRepository "studyspot/internal/domains/identity/repository"
	identityService "studyspot/internal/domains/identity/service"
	reservationRepository "studyspot/internal/domains/reservation/repository"
	reservationService "studyspot/internal/domains/reservation/service"
	spaceRepository "studyspot/internal/domains/space/repository"
	spaceService "studyspot/internal/domains/space/service"

	"github.com/google/wire"

	authHandler "studyspot/internal/handlers/auth"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	localstore.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewSessionMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var identityDomain = wire.NewSet(
	identityRepository.New,
	identityService.New,
)

var spaceDomain = wire.NewSet(
	spaceRepository.New,
	spaceService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	identityDomain,
	spaceDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	spaceHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
