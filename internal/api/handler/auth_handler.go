package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sneakstreet/storefront/internal/api/metrics"
	"github.com/sneakstreet/storefront/internal/api/middleware"
	"github.com/sneakstreet/storefront/internal/core/access"
	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	cookie      middleware.SessionCookie
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, cookie middleware.SessionCookie, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie, log: log}
}

// Login verifies credentials and starts a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, identity, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	h.cookie.Set(c, token)
	return c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		ExpiresIn: int64(h.cookie.TTL.Seconds()),
		User:      identity,
	})
}

// Logout clears the session cookie. Tokens are stateless, so a copy held
// elsewhere stays valid until it expires.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookie.Clear(c)
	return c.NoContent(http.StatusNoContent)
}

// Session reports the verified claims of the caller and the view they map to.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	state := access.StateOf(claims)
	if state == access.Unauthenticated {
		return c.JSON(http.StatusOK, sessionResponse{View: state.String()})
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		View:          state.String(),
		User:          &sessionUser{ID: claims.SubjectID, Role: claims.Role},
	})
}
