package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"civic-reports/internal/models"
)

// MyClaims names the in-memory session. UID and Role are filled once the
// session has logged in.
type MyClaims struct {
	SID  string `json:"sid"`
	UID  string `json:"uid,omitempty"`
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

var ErrMissingSession = errors.New("missing sid")

// SignToken issues an HS256 token for session sid.
func SignToken(secret string, ttl time.Duration, sid string, id *models.Identity) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	claims := MyClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	if id != nil {
		claims.UID = id.Username
		claims.Role = string(id.Role)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func ParseToken(secret, tokenStr string) (*MyClaims, error) {
	var claims MyClaims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.SID == "" {
		claims.SID = claims.Subject
	}
	if claims.SID == "" {
		return nil, ErrMissingSession
	}
	return &claims, nil
}

// JWTSession reads the bearer token and stores its session id in Locals.
// Requests without a token pass through; InjectState rejects them.
func JWTSession(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}

		claims, err := ParseToken(secret, strings.TrimSpace(auth[7:]))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals("session_id", claims.SID)
		return c.Next()
	}
}
