package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// extractBearerToken lê o token do header Authorization ou do cookie access_token.
func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && strings.TrimSpace(parts[1]) != "" {
			return strings.TrimSpace(parts[1]), nil
		}
		return "", errors.New("Unauthorized - Malformed Authorization header")
	}

	if cookie := c.Cookies("access_token"); cookie != "" {
		return cookie, nil
	}

	return "", errors.New("Unauthorized - Missing token")
}

// validateTokenExpiry confere o claim exp com tolerância de clock skew.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expiresAt := time.Unix(int64(expFloat), 0)
	if time.Now().After(expiresAt.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

// extractUserID lê o claim user_id (ou sub) como UUID.
func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok || raw == "" {
		raw, ok = claims["sub"].(string)
		if !ok || raw == "" {
			return uuid.Nil, errors.New("missing user_id claim")
		}
	}
	return uuid.Parse(raw)
}

// storeBasicClaimsToLocals guarda role e nome no context da request.
// O role vem do banco (fonte de verdade), não do token.
func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims, dbRole string) {
	c.Locals("userRole", dbRole)
	if name, ok := claims["user_name"].(string); ok && name != "" {
		c.Locals("user_name", name)
	}
}
