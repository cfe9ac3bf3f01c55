package middleware

import (
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie the login and logout handlers manage.
const SessionCookieName = "session"

// AuthMiddleware resolves the session identity behind each request.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the session token and stores the resolved viewer
// on the request. The token is read from the session cookie; a Bearer
// header is accepted as a fallback for non-browser clients.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.sessionToken(c)
		if token == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Session token is missing")
		}

		claims, err := m.tokenSvc.ValidateSessionToken(token)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Session token is invalid or expired")
		}

		viewer := policy.Viewer{AccountID: claims.UserID, Role: claims.Role}
		deliverycontext.SetViewer(c, viewer)

		return next(c)
	}
}

func (m *AuthMiddleware) sessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	return ""
}
