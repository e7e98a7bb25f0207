package handler

import (
	"internhub/internal/delivery/http/dto"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/pkg/response"
	"internhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type GoalHandler struct {
	uc usecase.GoalUsecase
}

type goalCreateRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	TargetRole     string   `json:"target_role"`
	Timeline       string   `json:"timeline"`
	RequiredSkills []string `json:"required_skills"`
}

type milestoneUpdateRequest struct {
	Completed bool `json:"completed"`
}

func NewGoalHandler(uc usecase.GoalUsecase) *GoalHandler {
	return &GoalHandler{uc: uc}
}

func (h *GoalHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Patch("/:id/milestones/:milestoneID", h.UpdateMilestone)
}

func (h *GoalHandler) Create(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req goalCreateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	g, err := h.uc.Create(c.Context(), userID, usecase.GoalCreateInput{
		Title:          req.Title,
		Description:    req.Description,
		TargetRole:     req.TargetRole,
		Timeline:       req.Timeline,
		RequiredSkills: req.RequiredSkills,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "created", dto.FromGoal(g))
}

func (h *GoalHandler) List(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromGoals(items))
}

func (h *GoalHandler) UpdateMilestone(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	goalID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	milestoneID, err := pathID(c, "milestoneID")
	if err != nil {
		return err
	}

	var req milestoneUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	g, err := h.uc.SetMilestoneCompleted(c.Context(), userID, goalID, milestoneID, req.Completed)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromGoal(g))
}
