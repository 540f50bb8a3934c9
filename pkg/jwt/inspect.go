package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that cannot be parsed
var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload issued by the Osidou backend.
// The backend puts the user's email in "sub".
type Claims struct {
	jwt.RegisteredClaims
}

// Email returns the "sub" claim
func (c *Claims) Email() string {
	return c.Subject
}

// Expiry returns the "exp" claim, zero when the token has none
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Expired reports whether the token expired before now
func (c *Claims) Expired(now time.Time) bool {
	exp := c.Expiry()
	return !exp.IsZero() && now.After(exp)
}

// Inspect decodes the token payload WITHOUT verifying the signature.
// The signing key lives with the backend; the web tier only reads claims for display.
func Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
