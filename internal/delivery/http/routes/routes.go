package routes

import (
	"internhub/internal/delivery/http/middleware"
	v1 "internhub/internal/delivery/http/routes/v1"
	"internhub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	handlers v1.Handlers
	authMw   *middleware.AuthMiddleware
}

func NewRegistry(handlers v1.Handlers, authMw *middleware.AuthMiddleware) *Registry {
	return &Registry{handlers: handlers, authMw: authMw}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, "ok", nil)
	})

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.handlers, r.authMw)
}
