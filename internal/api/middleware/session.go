package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/ports"
)

const claimsKey = "session_claims"

// SessionCookie describes the cookie that carries the session token.
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// Set writes the token as an HttpOnly cookie living as long as the token.
func (sc SessionCookie) Set(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sc.TTL.Seconds()),
	})
}

// Clear expires the cookie on the client.
func (sc SessionCookie) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

// Session reads the token from the session cookie, falling back to an
// Authorization: Bearer header, and stores verified claims on the context.
// It never rejects a request: a stale cookie is cleared and the header is
// tried next. With no valid token the request proceeds without a session.
func Session(reader ports.SessionReader, cookie SessionCookie) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := cookieToken(c, cookie.Name); token != "" {
				claims, err := reader.Read(token)
				if err == nil {
					SetClaims(c, claims)
					return next(c)
				}
				cookie.Clear(c)
			}

			if token := bearerToken(c); token != "" {
				if claims, err := reader.Read(token); err == nil {
					SetClaims(c, claims)
				}
			}
			return next(c)
		}
	}
}

func cookieToken(c echo.Context, name string) string {
	ck, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return ck.Value
}

func bearerToken(c echo.Context) string {
	parts := strings.SplitN(c.Request().Header.Get(echo.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// SetClaims stores verified claims on the request context.
func SetClaims(c echo.Context, claims *domain.SessionClaims) {
	c.Set(claimsKey, claims)
}

// ClaimsFrom returns the verified claims of the request, or nil.
func ClaimsFrom(c echo.Context) *domain.SessionClaims {
	claims, _ := c.Get(claimsKey).(*domain.SessionClaims)
	return claims
}
