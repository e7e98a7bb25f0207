package handler

import (
	"strconv"

	"internhub/internal/delivery/http/dto"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/pkg/response"
	"internhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type InternshipHandler struct {
	search          usecase.SearchUsecase
	detail          usecase.InternshipUsecase
	recommendations usecase.RecommendationUsecase
}

func NewInternshipHandler(search usecase.SearchUsecase, detail usecase.InternshipUsecase, recommendations usecase.RecommendationUsecase) *InternshipHandler {
	return &InternshipHandler{search: search, detail: detail, recommendations: recommendations}
}

func (h *InternshipHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	// The static segment must register before the :id catch-all.
	r.Get("/recommendations", h.Recommendations)
	r.Get("/", h.Search)
	r.Get("/:id", h.Detail)
}

func (h *InternshipHandler) Search(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	page, err := queryInt(c, "page", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.search.Search(c.Context(), userID, usecase.SearchParams{
		Query:    c.Query("query"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
		Industry: c.Query("industry"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromSearchResult(res))
}

func (h *InternshipHandler) Detail(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	internshipID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.detail.Detail(c.Context(), userID, internshipID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromInternshipDetail(detail))
}

func (h *InternshipHandler) Recommendations(c fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	items, err := h.recommendations.Recommendations(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "ok", dto.FromRecommendations(items))
}

func queryInt(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(s)
}
