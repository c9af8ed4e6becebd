package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"talent-align/internal/delivery/http/middleware"
	"talent-align/internal/delivery/http/response"
	"talent-align/internal/usecase"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeMissingFields, "Missing required fields", err)
	case errors.Is(err, usecase.ErrMissingActionID):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeMissingActionID, "Action id is required", err)
	case errors.Is(err, usecase.ErrInvalidProgress):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeInvalidProgress, "Progress must be between 0 and 100", err)
	case errors.Is(err, usecase.ErrInvalidDueDate):
		return middleware.NewAppError(fiber.StatusBadRequest, response.CodeInvalidDueDate, "Due date must be YYYY-MM-DD", err)
	case errors.Is(err, usecase.ErrActionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.CodeActionNotFound, "Action not found", err)
	case errors.Is(err, usecase.ErrOrganizationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.CodeOrganizationNotFound, "Organization not found", err)
	case errors.Is(err, usecase.ErrMockNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.CodeMockNotFound, "Mock resource not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.CodeInternalError, response.MessageInternalServerError, err)
	}
}
