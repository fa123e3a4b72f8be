// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrInvalidAPIKey = errors.New("invalid API key")
	ErrMissingToken  = errors.New("missing bearer token")
)

// BearerToken extracts the token from an "Authorization: Bearer <token>" header
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// ValidateAPIKey compares the provided key with the configured one in constant time.
// Both sides are hashed first so the comparison does not leak the key length.
func ValidateAPIKey(provided, expected string) error {
	p := sha256.Sum256([]byte(provided))
	e := sha256.Sum256([]byte(expected))
	if !hmac.Equal(p[:], e[:]) {
		return ErrInvalidAPIKey
	}
	return nil
}

// Authorize checks the request's bearer token against apiKey.
// An empty apiKey disables the check.
func Authorize(r *http.Request, apiKey string) error {
	if apiKey == "" {
		return nil
	}
	token, err := BearerToken(r)
	if err != nil {
		return err
	}
	return ValidateAPIKey(token, apiKey)
}
