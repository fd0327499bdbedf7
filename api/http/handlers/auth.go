package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-analyzer/api/http/presenter"
	"github.com/artem13815/resume-analyzer/pkg/auth"
)

type AuthHandler struct {
	useCase  auth.AuthUseCase
	validate *validator.Validate
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase, validate: validator.New()}
}

type tokenRequest struct {
	ClientID string `json:"clientId" validate:"required,max=128"`
	Password string `json:"password" validate:"required,max=72"`
}

// Token выдаёт JWT для клиента сервиса.
// @Summary Issue access token
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body tokenRequest true "client credentials"
// @Success 200 {object} auth.Token
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse "auth is disabled"
// @Router  /auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	if !h.useCase.Enabled() {
		return presenter.Error(c, http.StatusNotFound, "authentication is disabled")
	}
	var req tokenRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "clientId and password are required")
	}

	token, err := h.useCase.Login(c.Context(), req.ClientID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, auth.ErrDisabled):
			return presenter.Error(c, http.StatusNotFound, "authentication is disabled")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to issue token")
		}
	}
	return presenter.JSON(c, http.StatusOK, token)
}
