package handler

import (
	"internhub/internal/delivery/http/dto"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/pkg/response"
	"internhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type assessRequest struct {
	Skill   string `json:"skill"`
	Answers []bool `json:"answers"`
}

type gapAnalysisRequest struct {
	TargetRole     string   `json:"target_role"`
	RequiredSkills []string `json:"required_skills"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/assess", h.Assess)
	r.Get("/assessments", h.ListAssessments)
	r.Post("/gap-analysis", h.GapAnalysis)
	r.Get("/recommendations", h.Recommendations)
}

func (h *SkillHandler) Assess(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req assessRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.uc.Assess(c.Context(), userID, req.Skill, req.Answers)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "created", dto.FromAssessment(result))
}

func (h *SkillHandler) ListAssessments(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListAssessments(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromAssessments(items))
}

func (h *SkillHandler) GapAnalysis(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req gapAnalysisRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	report, err := h.uc.GapAnalysis(c.Context(), userID, req.TargetRole, req.RequiredSkills)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", report)
}

func (h *SkillHandler) Recommendations(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	report, err := h.uc.Recommendations(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", report)
}
