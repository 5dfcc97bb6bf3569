package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

var errInvalidSessionToken = errors.New("invalid token")

// SessionClaims is what a dashboard bearer token carries: the id of the
// Redis session it stands for.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// ParseJWT verifies an HS256 session token and returns its session id.
func ParseJWT(tokenString, secret string) (string, error) {
	claims := new(SessionClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.SessionID == "" {
		return "", errInvalidSessionToken
	}
	return claims.SessionID, nil
}
