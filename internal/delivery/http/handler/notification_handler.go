package handler

import (
	"internhub/internal/delivery/http/dto"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/pkg/response"
	"internhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Patch("/read", h.MarkRead)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromNotifications(items))
}

// MarkRead takes the notification id as a query parameter.
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	notificationID, err := uuid.Parse(c.Query("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.MarkRead(c.Context(), userID, notificationID); err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", nil)
}
