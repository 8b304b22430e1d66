package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a session credential fails validation.
var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims carries the authenticated user name on top of the
// registered claim set.
type SessionClaims struct {
	jwt.RegisteredClaims
	User string `json:"user"`
}

// NewSessionToken signs an HS256 session credential for user, valid for
// validity from now. The token ID is a fresh UUID, so two credentials for
// the same user are never identical.
func NewSessionToken(user string, secret []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		User: user,
	})
	return token.SignedString(secret)
}

// UserFromSessionToken validates a session credential and returns the user
// name it was issued to.
func UserFromSessionToken(tokenString string, secret []byte) (string, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	return claims.User, nil
}
