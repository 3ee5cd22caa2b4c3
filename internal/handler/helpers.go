package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/skillmarket/skillmarket-api/internal/middleware"
	"github.com/skillmarket/skillmarket-api/internal/models"
)

func currentUser(c *fiber.Ctx) (models.PublicUser, bool) {
	return middleware.UserFromContext(c)
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}
