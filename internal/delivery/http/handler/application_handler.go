package handler

import (
	"internhub/internal/delivery/http/dto"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/pkg/response"
	"internhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	InternshipID uuid.UUID `json:"internship_id"`
	Notes        string    `json:"notes"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Apply)
	r.Get("/", h.List)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.InternshipID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}

	app, err := h.uc.Apply(c.Context(), userID, req.InternshipID, req.Notes)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "created", dto.FromApplication(app))
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromApplicationList(items))
}
