package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/skillmarket/skillmarket-api/internal/service"
	"github.com/skillmarket/skillmarket-api/internal/utils"
)

// AdminHandler manages the admin aggregation endpoints. The router mounts
// these behind token validation plus an admin-only role guard.
type AdminHandler struct {
	service *service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler builds an admin handler instance.
func NewAdminHandler(service *service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_handler").Logger(),
	}
}

// Register attaches the admin routes to the provided router group.
func (h *AdminHandler) Register(router fiber.Router) {
	router.Get("/users", h.listUsers)
	router.Get("/courses", h.listCourses)
	router.Get("/stats", h.stats)
}

func (h *AdminHandler) listUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, fiber.Map{"users": users})
}

func (h *AdminHandler) listCourses(c *fiber.Ctx) error {
	courses, err := h.service.ListCourses(c.Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, fiber.Map{"courses": courses})
}

func (h *AdminHandler) stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, fiber.Map{"stats": stats})
}

func (h *AdminHandler) handleError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
