package handler

import (
	"internhub/internal/delivery/http/dto"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/pkg/response"
	"internhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type profileUpdateRequest struct {
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	University     string   `json:"university"`
	Major          string   `json:"major"`
	GraduationYear *int     `json:"graduation_year"`
	Bio            string   `json:"bio"`
	Skills         []string `json:"skills"`
	Interests      []string `json:"interests"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Get)
	r.Put("/", h.Update)
	r.Get("/strength", h.Strength)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	usr, err := h.uc.Get(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromUser(usr))
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req profileUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.uc.Update(c.Context(), userID, usecase.ProfileUpdateInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		University:     req.University,
		Major:          req.Major,
		GraduationYear: req.GraduationYear,
		Bio:            req.Bio,
		Skills:         req.Skills,
		Interests:      req.Interests,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromUser(usr))
}

func (h *ProfileHandler) Strength(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	report, err := h.uc.Strength(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromStrengthReport(report))
}
