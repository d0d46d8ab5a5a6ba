package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/FarmEase/farmease_backend/internal/middleware"
)

// GenerateJWT generates a new JWT token carrying the username as subject and
// the user's marketplace role as a custom claim.
func GenerateJWT(username, role, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	expiresAt := time.Now().Add(expiryDuration)
	claims := middleware.RoleClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	return signed, expiresAt, err
}
