package domain

import "errors"

// Domain errors, mapped to HTTP statuses at the interface layer.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameTaken     = errors.New("username already registered")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("access denied")
	ErrInvalidSecret     = errors.New("invalid secret password")
	ErrInsufficientStock = errors.New("insufficient inventory stock")
)
