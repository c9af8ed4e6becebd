package middleware

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"talent-align/internal/delivery/http/response"
	"talent-align/internal/logger"
)

type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, code string, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Code: code, Message: message, Cause: cause}
}

type ErrorMiddleware struct {
	log *zap.Logger
}

func NewErrorMiddleware(log *zap.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{log: logger.OrNop(log).Named("http")}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.log.Error("panic recovered",
					zap.String("path", c.Path()),
					zap.String("panic", fmt.Sprint(r)),
					zap.Stack("stack"),
				)
				err = response.Error(c, fiber.StatusInternalServerError, response.CodeInternalError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, code, msg, data := normalizeError(err)
		if status >= 500 {
			m.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		}
		return response.Error(c, status, code, msg, data)
	}
}

// Handler adapts the middleware's rendering for fiber.Config.ErrorHandler, so
// errors raised outside the middleware chain (routing 404/405) share the envelope.
func (m *ErrorMiddleware) Handler() fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		status, code, msg, data := normalizeError(err)
		return response.Error(c, status, code, msg, data)
	}
}

func normalizeError(err error) (int, string, string, interface{}) {
	if err == nil {
		return fiber.StatusInternalServerError, response.CodeInternalError, response.MessageInternalServerError, nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode <= 0 || appErr.StatusCode >= 500 {
			return fiber.StatusInternalServerError, response.CodeInternalError, response.MessageInternalServerError, nil
		}

		code := appErr.Code
		if code == "" {
			code = response.CodeForStatus(appErr.StatusCode)
		}
		return appErr.StatusCode, code, appErr.Message, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			if status == fiber.StatusServiceUnavailable {
				return status, response.CodeServiceUnavailable, fiberErr.Message, nil
			}
			return fiber.StatusInternalServerError, response.CodeInternalError, response.MessageInternalServerError, nil
		}
		return status, response.CodeForStatus(status), fiberErr.Message, nil
	}

	return fiber.StatusInternalServerError, response.CodeInternalError, response.MessageInternalServerError, nil
}
