package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"talent-align/internal/delivery/http/middleware"
	"talent-align/internal/delivery/http/response"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// bindJSON decodes the request body into out. An empty body leaves out at its
// zero value so required-field checks report the missing fields instead.
func bindJSON(c fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.Bind().JSON(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeInvalidBody, "Malformed JSON body", err)
	}
	return nil
}

// validateRequest runs struct tag validation and maps any failure to code.
func validateRequest(req any, code, message string) error {
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, code, message, err)
	}
	return nil
}
