// Package auth implements the authentication and authorization core:
// the signed identity token codec, password hashing, and the pure
// allow/deny policy applied by the services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cookenu/internal/server/models"
)

// Identity is the verified claim carried by a token: who is calling and
// with which role. It is transient and valid only for the current request.
type Identity struct {
	UserID string
	Role   models.Role
}

// Claims extends the registered JWT claims with the subject's id and role.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Role   string `json:"role"`
}

// TokenCodec issues and verifies HS256-signed identity tokens. It is
// stateless apart from the signing secret, the configured validity and the
// clock, so a single codec is shared by all requests.
type TokenCodec struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewTokenCodec(secret []byte, validity time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, validity: validity, now: time.Now}
}

// WithClock returns a copy of the codec using the given clock. Tests use it
// to step across the expiry boundary without sleeping.
func (c *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	return &TokenCodec{secret: c.secret, validity: c.validity, now: now}
}

// Issue signs a token carrying the subject id and role, valid from now
// until now plus the configured validity.
func (c *TokenCodec) Issue(userID string, role models.Role) (string, error) {
	issued := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(c.validity)),
		},
		UserID: userID,
		Role:   string(role),
	})

	return token.SignedString(c.secret)
}

// Verify parses and validates a token and returns the Identity it carries.
// Verification fails closed: a missing, malformed, tampered or expired token
// yields (zero Identity, false) with no indication of which defect occurred.
// An unrecognized role collapses to NORMAL.
func (c *TokenCodec) Verify(tokenString string) (Identity, bool) {
	if tokenString == "" {
		return Identity{}, false
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid || claims.UserID == "" {
		return Identity{}, false
	}

	return Identity{UserID: claims.UserID, Role: models.ParseRole(claims.Role)}, true
}
