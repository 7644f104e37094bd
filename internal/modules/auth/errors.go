package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionVerifying   = errors.New("session verification in progress")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
