package response

import "github.com/gofiber/fiber/v3"

// SemanticResponse is the envelope every endpoint answers with. Error carries
// a stable machine-readable code on failures.
type SemanticResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageNotFound            = "not found"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

const (
	CodeInvalidBody           = "invalid_body"
	CodeMissingFields         = "missing_fields"
	CodeMissingActionID       = "missing_action_id"
	CodeActionNotFound        = "action_not_found"
	CodeOrganizationNotFound  = "organization_not_found"
	CodeMockNotFound          = "mock_not_found"
	CodeInvalidProgress       = "invalid_progress"
	CodeInvalidDueDate        = "invalid_due_date"
	CodeNotFound              = "not_found"
	CodeBadRequest            = "bad_request"
	CodeInternalError         = "internal_error"
	CodeServiceUnavailable    = "service_unavailable"
	CodeMethodNotAllowed      = "method_not_allowed"
	CodeUnsupportedMediaType  = "unsupported_media_type"
	CodeUnprocessableEntity   = "unprocessable_entity"
	CodeRequestEntityTooLarge = "request_entity_too_large"
)

func Success(c fiber.Ctx, status int, message string, data interface{}) error {
	st := normalizeStatus(status)
	msg := normalizeMessage(message, st)
	return c.Status(st).JSON(SemanticResponse{Status: st, Message: msg, Data: data})
}

func Error(c fiber.Ctx, status int, code string, message string, data interface{}) error {
	st := normalizeStatus(status)
	msg := normalizeMessage(message, st)
	if code == "" {
		code = CodeForStatus(st)
	}
	return c.Status(st).JSON(SemanticResponse{Status: st, Message: msg, Data: data, Error: code})
}

// CodeForStatus is the fallback code for errors that did not name one.
func CodeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return CodeBadRequest
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusMethodNotAllowed:
		return CodeMethodNotAllowed
	case fiber.StatusRequestEntityTooLarge:
		return CodeRequestEntityTooLarge
	case fiber.StatusUnsupportedMediaType:
		return CodeUnsupportedMediaType
	case fiber.StatusUnprocessableEntity:
		return CodeUnprocessableEntity
	case fiber.StatusServiceUnavailable:
		return CodeServiceUnavailable
	default:
		if status >= 500 {
			return CodeInternalError
		}
		return CodeBadRequest
	}
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func normalizeMessage(message string, status int) string {
	if message != "" {
		return message
	}
	return defaultMessageForStatus(status)
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusOK, fiber.StatusCreated:
		return MessageOK
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
