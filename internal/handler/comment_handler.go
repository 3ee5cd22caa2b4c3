package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/skillmarket/skillmarket-api/internal/dto"
	"github.com/skillmarket/skillmarket-api/internal/service"
	"github.com/skillmarket/skillmarket-api/internal/utils"
)

// CommentHandler manages lesson discussion endpoints.
type CommentHandler struct {
	service *service.CommentService
	logger  zerolog.Logger
}

// NewCommentHandler builds a comment handler instance.
func NewCommentHandler(service *service.CommentService, logger zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		logger:  logger.With().Str("component", "comment_handler").Logger(),
	}
}

// RegisterPublic attaches the unauthenticated comment routes. Reading a
// lesson's thread requires no token.
func (h *CommentHandler) RegisterPublic(router fiber.Router) {
	router.Get("/comments/:lessonId", h.list)
}

// RegisterProtected attaches the token-guarded comment routes.
func (h *CommentHandler) RegisterProtected(router fiber.Router, auth fiber.Handler) {
	router.Post("/comments", auth, h.add)
}

func (h *CommentHandler) add(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	var payload dto.CommentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	comment, err := h.service.Add(c.Context(), user, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, fiber.Map{"comment": comment})
}

func (h *CommentHandler) list(c *fiber.Ctx) error {
	comments, err := h.service.ListForLesson(c.Context(), c.Params("lessonId"))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendJSON(c, fiber.StatusOK, fiber.Map{"comments": comments})
}

func (h *CommentHandler) handleError(c *fiber.Ctx, err error) error {
	if isValidationError(err) {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
