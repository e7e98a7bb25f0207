package handler

import (
	"internhub/internal/delivery/http/dto"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/pkg/response"
	"internhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MentorHandler struct {
	uc usecase.MentorUsecase
}

type mentorMessageRequest struct {
	Message string `json:"message"`
}

func NewMentorHandler(uc usecase.MentorUsecase) *MentorHandler {
	return &MentorHandler{uc: uc}
}

func (h *MentorHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/chat", h.Session)
	r.Post("/chat", h.SendMessage)
}

func (h *MentorHandler) Session(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	session, err := h.uc.Session(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromMentorSession(session))
}

func (h *MentorHandler) SendMessage(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req mentorMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	session, err := h.uc.SendMessage(c.Context(), userID, req.Message)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromMentorSession(session))
}
