package v1

import (
	"internhub/internal/delivery/http/handler"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth          *handler.AuthHandler
	Profile       *handler.ProfileHandler
	Internships   *handler.InternshipHandler
	Applications  *handler.ApplicationHandler
	Skills        *handler.SkillHandler
	Goals         *handler.GoalHandler
	Resumes       *handler.ResumeHandler
	Portfolios    *handler.PortfolioHandler
	Mentor        *handler.MentorHandler
	Notifications *handler.NotificationHandler

	WS *ws.Handler
}

// Register mounts the public auth group and the protected API groups.
// Everything except /auth requires a valid access token.
func Register(r fiber.Router, h Handlers, authMw *middleware.AuthMiddleware) {
	if r == nil || authMw == nil {
		return
	}

	h.Auth.RegisterRoutes(r.Group("/auth"))

	protected := r.Group("", authMw.Middleware())

	h.Profile.RegisterRoutes(protected.Group("/profile"))
	h.Internships.RegisterRoutes(protected.Group("/internships"))
	h.Applications.RegisterRoutes(protected.Group("/applications"))
	h.Skills.RegisterRoutes(protected.Group("/skills"))
	h.Goals.RegisterRoutes(protected.Group("/goals"))
	h.Resumes.RegisterRoutes(protected.Group("/resumes"))
	h.Portfolios.RegisterRoutes(protected.Group("/portfolios"))
	h.Mentor.RegisterRoutes(protected.Group("/mentor"))
	h.Notifications.RegisterRoutes(protected.Group("/notifications"))

	if h.WS != nil {
		protected.Get("/notifications/ws", h.WS.HandleNotificationsWS)
	}
}
