package handler

import (
	"errors"

	"internhub/internal/delivery/http/middleware"
	"internhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// mapUsecaseError translates usecase sentinels into transport errors.
// Anything unrecognized is a 500 with the detail kept server-side.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", map[string]any{"field": vErr.Field}, err)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this internship", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrInternshipNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Internship not found", nil, err)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Notification not found", nil, err)
	case errors.Is(err, usecase.ErrGoalNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Career goal not found", nil, err)
	case errors.Is(err, usecase.ErrMilestoneNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Milestone not found", nil, err)
	case errors.Is(err, usecase.ErrPortfolioNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Portfolio not found", nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrResumeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "internal server error", nil, err)
	}
}

// authedUserID reads the id placed by the auth middleware; a miss means
// the route was mounted outside the protected group.
func authedUserID(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

// pathID parses a uuid route parameter; malformed ids map to 400.
func pathID(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return id, nil
}
