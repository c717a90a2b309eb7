// internal/utils/jwt.go
package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	zlog "github.com/rs/zerolog/log"
)

// JwtClaims is the payload stored inside issued tokens: the operator account
// id, username and role on top of the standard registered claims.
type JwtClaims struct {
	AccountID            int    `json:"account_id"`
	Username             string `json:"username"`
	Role                 string `json:"role"`
	jwt.RegisteredClaims
}

// jwtSecret signs and verifies tokens. Read from JWT_SECRET at startup.
var jwtSecret = []byte(os.Getenv("JWT_SECRET"))

// GenerateJWT creates a signed token for an operator account.
func GenerateJWT(accountID int, username, role string) (string, error) {
	expirationTime := time.Now().Add(72 * time.Hour)

	claims := JwtClaims{
		AccountID: accountID,
		Username:  username,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "diana-gamification",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(jwtSecret)
	if err != nil {
		zlog.Error().Err(err).Msg("Error signing JWT token")
		return "", fmt.Errorf("error signing token: %w", err)
	}

	zlog.Debug().Int("account_id", accountID).Str("username", username).Str("role", role).Msg("Generated JWT token")
	return signedToken, nil
}

// ValidateJWT verifies the token's signature and expiry and decodes its claims.
func ValidateJWT(tokenString string) (*JwtClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Reject anything but HMAC, so an attacker cannot downgrade to 'none'.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			algo := "unknown"
			if algStr, okAlg := token.Header["alg"].(string); okAlg {
				algo = algStr
			}
			zlog.Warn().Str("algorithm", algo).Msg("Unexpected signing method during JWT validation")
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		zlog.Warn().Err(err).Msg("Error parsing or validating JWT token")
		return nil, fmt.Errorf("error parsing token: %w", err)
	}

	if claims, ok := token.Claims.(*JwtClaims); ok && token.Valid {
		return claims, nil
	}

	zlog.Warn().Msg("Invalid token or claims after parsing")
	return nil, fmt.Errorf("invalid token")
}

// ExtractToken pulls the token string out of the "Authorization: Bearer ..."
// header, or returns "" when the header is missing or malformed.
func ExtractToken(c *fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}

	zlog.Warn().Str("AuthorizationHeader", authHeader).Msg("Invalid Authorization header format (Expected 'Bearer <token>')")
	return ""
}

// ExtractAccountIDFromJWT reads the operator account id the Protected()
// middleware stored in the request context.
func ExtractAccountIDFromJWT(c *fiber.Ctx) (int, error) {
	claims, ok := c.Locals("user").(*JwtClaims)
	if !ok {
		zlog.Error().Str("path", c.Path()).Msg("Could not extract account claims from Fiber context (middleware issue?)")
		return 0, fmt.Errorf("could not extract account claims from context")
	}
	return claims.AccountID, nil
}

// ExtractRoleFromJWT reads the operator role stored by Protected().
func ExtractRoleFromJWT(c *fiber.Ctx) (string, error) {
	claims, ok := c.Locals("user").(*JwtClaims)
	if !ok {
		zlog.Error().Str("path", c.Path()).Msg("Could not extract account claims from Fiber context (middleware issue?)")
		return "", fmt.Errorf("could not extract account claims from context")
	}
	return claims.Role, nil
}
