package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cafe-finder/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return c.JSON(SuccessResponse{
		Data: data,
	})
}

// SendError renders err with the status of its kind. Wrapped *AppError
// values are found through the chain; anything else is a 500.
func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
