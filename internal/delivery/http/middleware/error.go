package middleware

import (
	"errors"
	"log"

	"internhub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
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

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

// Middleware turns handler errors into the shared response envelope.
// 5xx details never leak to the client.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered | method=%s path=%s panic=%v", c.Method(), c.OriginalURL(), r)
				err = response.Error(c, fiber.StatusInternalServerError, "internal server error", nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		if status >= 500 {
			m.logger.Printf("request failed | method=%s path=%s error=%v", c.Method(), c.OriginalURL(), err)
		}
		return response.Error(c, status, msg, data)
	}
}

func normalizeError(err error) (int, string, interface{}) {
	if err == nil {
		return fiber.StatusInternalServerError, "internal server error", nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, "internal server error", nil
		}
		return status, appErr.Message, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, "internal server error", nil
		}
		return status, fiberErr.Message, nil
	}

	return fiber.StatusInternalServerError, "internal server error", nil
}
