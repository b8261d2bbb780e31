// Package auth verifies bearer tokens issued by the identity provider.
package auth

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrMissingToken    = errors.New("authorization header missing")
	ErrMalformedHeader = errors.New("invalid authorization header format")
	ErrInvalidToken    = errors.New("invalid token")
)

// GetTokenFromRequest extracts the token from an "Authorization: Bearer <token>" header.
func GetTokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMalformedHeader
	}

	return parts[1], nil
}
