package router

import (
	"github.com/oksasatya/photocards-api/internal/application"
	"github.com/oksasatya/photocards-api/internal/container"
	pginfra "github.com/oksasatya/photocards-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/photocards-api/internal/interface/http"
	"github.com/oksasatya/photocards-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(pool)
	cardRepo := pginfra.NewCardRepository(pool)

	userSvc := application.NewUserService(userRepo, jwt, logger)
	cardSvc := application.NewCardService(cardRepo, logger)

	userHandler := handlers.NewUserHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	cardHandler := handlers.NewCardHandler(cardSvc, logger)

	r.Add(modules.NewUserModule(userHandler, jwt))
	r.Add(modules.NewCardModule(cardHandler, jwt))
}
