package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/skillmarket/skillmarket-api/internal/dto"
	"github.com/skillmarket/skillmarket-api/internal/service"
	"github.com/skillmarket/skillmarket-api/internal/utils"
)

// LiveClassHandler manages live class endpoints.
type LiveClassHandler struct {
	service *service.LiveClassService
	logger  zerolog.Logger
}

// NewLiveClassHandler builds a live class handler instance.
func NewLiveClassHandler(service *service.LiveClassService, logger zerolog.Logger) *LiveClassHandler {
	return &LiveClassHandler{
		service: service,
		logger:  logger.With().Str("component", "liveclass_handler").Logger(),
	}
}

// RegisterPublic attaches the unauthenticated live class routes.
func (h *LiveClassHandler) RegisterPublic(router fiber.Router) {
	router.Get("/live-classes/:courseId", h.listForCourse)
}

// RegisterProtected attaches the token-guarded live class routes. staffOnly
// gates creation to instructors and admins.
func (h *LiveClassHandler) RegisterProtected(router fiber.Router, auth, staffOnly fiber.Handler) {
	router.Post("/live-classes", auth, staffOnly, h.create)
}

func (h *LiveClassHandler) create(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	var payload dto.LiveClassCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	liveClass, err := h.service.Create(c.Context(), user, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, fiber.Map{"liveClass": liveClass})
}

func (h *LiveClassHandler) listForCourse(c *fiber.Ctx) error {
	liveClasses, err := h.service.ListForCourse(c.Context(), c.Params("courseId"))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, fiber.Map{"liveClasses": liveClasses})
}

func (h *LiveClassHandler) handleError(c *fiber.Ctx, err error) error {
	if isValidationError(err) {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
