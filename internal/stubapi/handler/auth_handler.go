package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
	"github.com/abkhaztransfer/transfer-client/internal/stubapi/middleware"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Post dispatches on the action query parameter.
//
// @Summary      Register or log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        action  query     string  true  "register or login"
// @Success      200     {object}  domain.AuthResult
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Router       /auth [post]
func (h *AuthHandler) Post(c echo.Context) error {
	switch c.QueryParam("action") {
	case "register":
		return h.Register(c)
	case "login":
		return h.Login(c)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown action")
	}
}

// Register opens a client account and returns a token for it.
func (h *AuthHandler) Register(c echo.Context) error {
	var req domain.RegisterInput
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
	}

	res, err := h.authService.Register(c.Request().Context(), req)
	if errors.Is(err, domain.ErrMissingFields) {
		return echo.NewHTTPError(http.StatusBadRequest, "All fields are required")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req domain.LoginInput
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	res, err := h.authService.Login(c.Request().Context(), req)
	if errors.Is(err, domain.ErrMissingFields) {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// Verify reports the identity behind the bearer token.
//
// @Summary      Verify a token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.SessionCheck
// @Failure      401  {object}  map[string]string
// @Router       /auth [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	token, ok := middleware.BearerToken(c.Request())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header")
	}
	check, err := h.authService.Verify(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, check)
}
