package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/skillmarket/skillmarket-api/internal/dto"
	"github.com/skillmarket/skillmarket-api/internal/service"
	"github.com/skillmarket/skillmarket-api/internal/utils"
)

// CertificateHandler manages certificate endpoints.
type CertificateHandler struct {
	service *service.CertificateService
	logger  zerolog.Logger
}

// NewCertificateHandler builds a certificate handler instance.
func NewCertificateHandler(service *service.CertificateService, logger zerolog.Logger) *CertificateHandler {
	return &CertificateHandler{
		service: service,
		logger:  logger.With().Str("component", "certificate_handler").Logger(),
	}
}

// RegisterProtected attaches the token-guarded certificate routes.
func (h *CertificateHandler) RegisterProtected(router fiber.Router, auth fiber.Handler) {
	router.Post("/certificates", auth, h.generate)
	router.Get("/certificates", auth, h.list)
}

func (h *CertificateHandler) generate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	var payload dto.CertificateGenerateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	certificate, err := h.service.Generate(c.Context(), user, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, fiber.Map{"certificate": certificate})
}

func (h *CertificateHandler) list(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	certificates, err := h.service.ListMine(c.Context(), user.ID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, fiber.Map{"certificates": certificates})
}

func (h *CertificateHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "course not found")
	case errors.Is(err, service.ErrEnrollmentNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "enrollment not found")
	case errors.Is(err, service.ErrCourseNotCompleted):
		return utils.SendError(c, fiber.StatusBadRequest, "course not completed")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
