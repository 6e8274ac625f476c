package middleware

import (
	"fmt"
	"strings"

	"homework-grader/internal/logger"
	"homework-grader/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID" // Key for storing UserID in fiber.Ctx locals
)

// Protected requires a valid access token and stores its user id in the request locals.
func Protected(verifier service.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return unauthorized(c, fiber.StatusUnauthorized, "MISSING_AUTH_HEADER", "Authorization header is missing")
		}

		if !strings.HasPrefix(authHeader, BearerSchema) {
			return unauthorized(c, fiber.StatusUnauthorized, "INVALID_AUTH_SCHEME", "Authorization scheme is not Bearer")
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return unauthorized(c, fiber.StatusUnauthorized, "EMPTY_TOKEN", "Token is empty")
		}

		claims, err := verifier.ValidateJWT(c.Context(), tokenString)
		if err != nil {
			logger.Get().Debug("JWT validation error", zap.Error(err), zap.String("path", c.Path()))
			return unauthorized(c, fiber.StatusUnauthorized, "INVALID_TOKEN", err.Error())
		}

		if claims.TokenType != service.TokenTypeAccess {
			return unauthorized(c, fiber.StatusForbidden, "INVALID_TOKEN_TYPE",
				fmt.Sprintf("Invalid token type: expected %s, got %s", service.TokenTypeAccess, claims.TokenType))
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Code:    code,
		Message: message,
		Status:  status,
	})
}
