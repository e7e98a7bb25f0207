package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"internhub/internal/config"
	"internhub/internal/delivery/http/handler"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/delivery/http/routes"
	v1 "internhub/internal/delivery/http/routes/v1"
	"internhub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, mounts every route and starts the
// websocket hub. The returned cleanup releases external connections.
func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func(), error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	go c.Hub.Run()

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())

	registry := routes.NewRegistry(buildHandlers(c), middleware.NewAuthMiddleware(c.JWT))
	registry.Register(f)

	return &App{Fiber: f, Container: c}, c.Close, nil
}

func buildHandlers(c *Container) v1.Handlers {
	uc := c.Usecases
	return v1.Handlers{
		Auth:          handler.NewAuthHandler(uc.Auth),
		Profile:       handler.NewProfileHandler(uc.Profile),
		Internships:   handler.NewInternshipHandler(uc.Search, uc.Internship, uc.Recommendations),
		Applications:  handler.NewApplicationHandler(uc.Applications),
		Skills:        handler.NewSkillHandler(uc.Skills),
		Goals:         handler.NewGoalHandler(uc.Goals),
		Resumes:       handler.NewResumeHandler(uc.Resumes),
		Portfolios:    handler.NewPortfolioHandler(uc.Portfolios),
		Mentor:        handler.NewMentorHandler(uc.Mentor),
		Notifications: handler.NewNotificationHandler(uc.Notifications),
		WS:            ws.NewHandler(c.Hub, c.Logger),
	}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
