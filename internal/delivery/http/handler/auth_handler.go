package handler

import (
	"internhub/internal/delivery/http/dto"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/pkg/response"
	"internhub/internal/usecase"
	ucauth "internhub/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type registerRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	University     string `json:"university"`
	Major          string `json:"major"`
	GraduationYear *int   `json:"graduation_year"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, access, refresh, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		University:     req.University,
		Major:          req.Major,
		GraduationYear: req.GraduationYear,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	data := map[string]any{
		"user":          dto.FromUser(usr),
		"access_token":  access,
		"refresh_token": refresh,
	}
	return response.Success(c, fiber.StatusCreated, "created", data)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, access, refresh, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapUsecaseError(err)
	}

	data := map[string]any{
		"user":          dto.FromUser(usr),
		"access_token":  access,
		"refresh_token": refresh,
	}
	return response.Success(c, fiber.StatusOK, "ok", data)
}

// Refresh accepts the refresh token either as a bearer header or in
// the body; the body wins when both are present.
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var req refreshRequest
	_ = c.Bind().Body(&req)

	token := req.RefreshToken
	if token == "" {
		tok, ok := middleware.BearerToken(c.Get("Authorization"))
		if !ok {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		token = tok
	}

	access, refresh, err := h.uc.Refresh(c.Context(), token)
	if err != nil {
		return mapUsecaseError(err)
	}

	data := map[string]any{
		"access_token":  access,
		"refresh_token": refresh,
	}
	return response.Success(c, fiber.StatusOK, "ok", data)
}
