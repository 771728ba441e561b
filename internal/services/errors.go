package services

import (
	"errors"
	"strings"
)

var (
	ErrMalformedBody      = errors.New("request body is not valid JSON")
	ErrConflict           = errors.New("name or email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidSession     = errors.New("no session for token")
	ErrTokenCollision     = errors.New("session token already issued")
	ErrNotFound           = errors.New("not found")
)

// ValidationError carries every rule violation found in a payload.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
