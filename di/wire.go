//go:build wireinject
// +build wireinject

package di

import (
	"atelier/config"
	"atelier/infras/jwt"
	"atelier/infras/otel"
	"atelier/infras/postgres"
	"atelier/infras/redis"
	"atelier/infras/s3"
	"atelier/shared/cache"
	"atelier/transport/http"
	"atelier/transport/http/middleware"
	"atelier/transport/http/router"

	categoryRepository "atelier/internal/domains/category/repository"
	categoryService "atelier/internal/domains/category/service"
	contactRepository "atelier/internal/domains/contact/repository"
	contactService "atelier/internal/domains/contact/service"
	projectRepository "atelier/internal/domains/project/repository"
	projectService "atelier/internal/domains/project/service"

	"github.com/google/wire"

	authService "atelier/internal/domains/auth/service"
	storageService "atelier/internal/domains/storage/service"
	authHandler "atelier/internal/handlers/auth"
	categoryHandler "atelier/internal/handlers/category"
	contactHandler "atelier/internal/handlers/contact"
	healthHandler "atelier/internal/handlers/health"
	projectHandler "atelier/internal/handlers/project"
	storageHandler "atelier/internal/handlers/storage"
)

var configurations = wire.NewSet(
	config.Get,
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
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var projectDomain = wire.NewSet(
	projectRepository.New,
	projectService.New,
)

var categoryDomain = wire.NewSet(
	categoryRepository.New,
	categoryService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var storageDomain = wire.NewSet(
	storageService.New,
)

var domains = wire.NewSet(
	projectDomain,
	categoryDomain,
	contactDomain,
	authDomain,
	storageDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	projectHandler.New,
	categoryHandler.New,
	contactHandler.New,
	storageHandler.New,
	healthHandler.New,
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
