package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillmarket/skillmarket-api/internal/config"
	"github.com/skillmarket/skillmarket-api/internal/handler"
	"github.com/skillmarket/skillmarket-api/internal/middleware"
	"github.com/skillmarket/skillmarket-api/internal/models"
	"github.com/skillmarket/skillmarket-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler        *handler.AuthHandler
	CourseHandler      *handler.CourseHandler
	EnrollmentHandler  *handler.EnrollmentHandler
	CommentHandler     *handler.CommentHandler
	MessageHandler     *handler.MessageHandler
	ExamHandler        *handler.ExamHandler
	CertificateHandler *handler.CertificateHandler
	LiveClassHandler   *handler.LiveClassHandler
	AdminHandler       *handler.AdminHandler
	TokenMiddleware    fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	// Use provided token middleware, or a no-op if nil
	auth := deps.TokenMiddleware
	if auth == nil {
		auth = func(c *fiber.Ctx) error { return c.Next() }
	}

	staffOnly := middleware.RequireRole(models.RoleInstructor, models.RoleAdmin)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	if deps.AuthHandler != nil {
		deps.AuthHandler.RegisterPublic(api)
		deps.AuthHandler.RegisterProtected(api, auth)
	}

	if deps.CourseHandler != nil {
		deps.CourseHandler.RegisterPublic(api)
		deps.CourseHandler.RegisterProtected(api, auth, staffOnly)
	}

	if deps.EnrollmentHandler != nil {
		deps.EnrollmentHandler.RegisterProtected(api, auth)
	}

	if deps.CommentHandler != nil {
		deps.CommentHandler.RegisterPublic(api)
		deps.CommentHandler.RegisterProtected(api, auth)
	}

	if deps.MessageHandler != nil {
		deps.MessageHandler.RegisterProtected(api, auth)
	}

	if deps.ExamHandler != nil {
		deps.ExamHandler.RegisterPublic(api)
		deps.ExamHandler.RegisterProtected(api, auth, staffOnly)
	}

	if deps.CertificateHandler != nil {
		deps.CertificateHandler.RegisterProtected(api, auth)
	}

	if deps.LiveClassHandler != nil {
		deps.LiveClassHandler.RegisterPublic(api)
		deps.LiveClassHandler.RegisterProtected(api, auth, staffOnly)
	}

	if deps.AdminHandler != nil {
		admin := api.Group("/admin", auth, adminOnly)
		deps.AdminHandler.Register(admin)
	}
}
