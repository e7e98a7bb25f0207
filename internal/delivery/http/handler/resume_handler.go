package handler

import (
	"internhub/internal/delivery/http/dto"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/pkg/response"
	"internhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

type resumeUploadRequest struct {
	FileName string `json:"file_name"`
	Content  string `json:"content"`
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Upload)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

func (h *ResumeHandler) Upload(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req resumeUploadRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Upload(c.Context(), userID, req.FileName, req.Content)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "created", dto.FromResume(res))
}

func (h *ResumeHandler) List(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromResumes(items))
}

func (h *ResumeHandler) Get(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	resumeID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	res, err := h.uc.Get(c.Context(), userID, resumeID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromResume(res))
}
