package accounts

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// The session pointer is a single shared record: whoever logged in last on
// this storage backend owns the session. Instead of the raw serialized user,
// the record holds a signed token so a tampered or stale pointer is rejected
// rather than trusted.
const sessionKey = "current_user"

var errInvalidSessionToken = errors.New("invalid session token")

// sessionClaims carries the authenticated user's email in a signed JWT.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

func newSessionToken(email string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		Email: email,
	})

	return token.SignedString(secret)
}

// sessionEmail validates the signed session token and extracts the email.
func sessionEmail(tokenString string, secret []byte) (string, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.Email == "" {
		return "", errInvalidSessionToken
	}

	return claims.Email, nil
}
