package handler

import (
	"internhub/internal/delivery/http/dto"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/pkg/response"
	"internhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PortfolioHandler struct {
	uc usecase.PortfolioUsecase
}

type portfolioCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

type portfolioUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"is_public"`
}

type projectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ImageURL     string   `json:"image_url"`
	LiveURL      string   `json:"live_url"`
	GithubURL    string   `json:"github_url"`
	Category     string   `json:"category"`
	Featured     bool     `json:"featured"`
}

func NewPortfolioHandler(uc usecase.PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

func (h *PortfolioHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
	r.Post("/:id/projects", h.AddProject)
	r.Put("/:id/projects/:projectID", h.UpdateProject)
	r.Delete("/:id/projects/:projectID", h.RemoveProject)
}

func (h *PortfolioHandler) Create(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req portfolioCreateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Create(c.Context(), userID, usecase.PortfolioCreateInput{
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "created", dto.FromPortfolio(p))
}

func (h *PortfolioHandler) List(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromPortfolios(items))
}

func (h *PortfolioHandler) Get(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	portfolioID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.Get(c.Context(), userID, portfolioID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromPortfolio(p))
}

func (h *PortfolioHandler) Update(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	portfolioID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req portfolioUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Update(c.Context(), userID, portfolioID, usecase.PortfolioUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromPortfolio(p))
}

func (h *PortfolioHandler) Delete(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	portfolioID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), userID, portfolioID); err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", nil)
}

func (h *PortfolioHandler) AddProject(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	portfolioID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	project, err := h.uc.AddProject(c.Context(), userID, portfolioID, projectInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "created", project)
}

func (h *PortfolioHandler) UpdateProject(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	portfolioID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	projectID, err := pathID(c, "projectID")
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	project, err := h.uc.UpdateProject(c.Context(), userID, portfolioID, projectID, projectInputFromRequest(req))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", project)
}

func (h *PortfolioHandler) RemoveProject(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	portfolioID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	projectID, err := pathID(c, "projectID")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveProject(c.Context(), userID, portfolioID, projectID); err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", nil)
}

func projectInputFromRequest(req projectRequest) usecase.ProjectInput {
	return usecase.ProjectInput{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		ImageURL:     req.ImageURL,
		LiveURL:      req.LiveURL,
		GithubURL:    req.GithubURL,
		Category:     req.Category,
		Featured:     req.Featured,
	}
}
