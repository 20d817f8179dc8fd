package handler

import (
	"net/http"

	"github.com/alamin516/genius-car-server-sllcommerz/internal/apperr"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/dto"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/service"

	"github.com/labstack/echo/v4"
)

type TokenHandler struct {
	tokenService service.TokenService
}

func NewTokenHandler(tokenService service.TokenService) *TokenHandler {
	return &TokenHandler{
		tokenService: tokenService,
	}
}

func (h *TokenHandler) IssueToken(c echo.Context) error {
	var user map[string]interface{}
	if err := c.Bind(&user); err != nil {
		return apperr.Validation("invalid request body")
	}

	token, err := h.tokenService.Issue(user)
	if err != nil {
		return apperr.Internal("issue token", err)
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
