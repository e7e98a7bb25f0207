package response

import "github.com/gofiber/fiber/v3"

// SemanticResponse is the envelope every endpoint returns, success and
// failure alike.
type SemanticResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func Success(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

func Error(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

func write(c fiber.Ctx, status int, message string, data interface{}) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = defaultMessage(status)
	}
	return c.Status(status).JSON(SemanticResponse{Status: status, Message: message, Data: data})
}

func defaultMessage(status int) string {
	switch status {
	case fiber.StatusOK:
		return "ok"
	case fiber.StatusCreated:
		return "created"
	case fiber.StatusBadRequest:
		return "bad request"
	case fiber.StatusUnauthorized:
		return "unauthorized"
	case fiber.StatusForbidden:
		return "forbidden"
	case fiber.StatusNotFound:
		return "not found"
	case fiber.StatusConflict:
		return "conflict"
	default:
		if status >= 500 {
			return "internal server error"
		}
		return "error"
	}
}
