package http

import (
	"net/http"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// agentContextKey is the echo.Context key under which the authenticated
// agent's identity is stored by the auth middleware.
const agentContextKey = "authenticatedAgent"

// BearerAuth returns Echo middleware that verifies the Authorization header
// through the given verifier and stores the caller's identity in the request
// context. Requests without a valid bearer token are rejected with 401
// before reaching any handler.
func BearerAuth(verifier ports.IdentityVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := extractBearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing or malformed authorization header",
				})
			}

			agent, err := verifier.Verify(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid credential",
				})
			}

			c.Set(agentContextKey, agent)
			return next(c)
		}
	}
}

// extractBearerToken pulls the token out of an "Authorization: Bearer ..."
// header value. The scheme comparison is case-insensitive.
func extractBearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// agentFromContext retrieves the identity stored by BearerAuth.
func agentFromContext(c echo.Context) (kernel.AgentID, bool) {
	agent, ok := c.Get(agentContextKey).(kernel.AgentID)
	return agent, ok
}
