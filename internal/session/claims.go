package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired marks a structurally valid token whose exp lies in the past.
var ErrTokenExpired = errors.New("session token expired")

// Claims is the user claim set carried inside the backend-issued bearer
// token. The frontend caches it next to the token so the shell can show the
// user without re-decoding on every template render.
type Claims struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// DisplayName prefers the human name over the login username.
func (c Claims) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	if c.Username != "" {
		return c.Username
	}
	return "user"
}

// DecodeClaims extracts the claim set from a bearer token without verifying
// its signature. The signing secret lives on the backend; the frontend only
// needs the claims and the expiry, mirroring a browser-side token decode.
func DecodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode session token: %w", err)
	}

	if claims.ExpiresAt == nil {
		return nil, errors.New("session token has no expiry")
	}

	return claims, nil
}

// Validate reports whether the claims are still usable at the given instant.
func (c *Claims) Validate(now time.Time) error {
	if c.ExpiresAt == nil || !c.ExpiresAt.After(now) {
		return ErrTokenExpired
	}
	return nil
}
