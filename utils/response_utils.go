package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RespondWithError sends a JSON error envelope.
func RespondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// RespondWithJSON sends a JSON success envelope.
func RespondWithJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// FormatValidationErrors flattens validator/v10 errors into readable
// field messages.
func FormatValidationErrors(err error) []string {
	var messages []string
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			msg := fmt.Sprintf("Field '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s (value: %s)", msg, fe.Param())
			}
			messages = append(messages, msg)
		}
		return messages
	}
	return []string{err.Error()}
}

// ValidationMessage joins formatted validation errors into one string
// suitable for the error envelope.
func ValidationMessage(err error) string {
	return strings.Join(FormatValidationErrors(err), ", ")
}
