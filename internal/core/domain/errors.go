package domain

import "errors"

// Error kinds raised by the API client. They differ only by the operation
// family that produced them.
var (
	ErrAuth    = errors.New("auth error")
	ErrBooking = errors.New("booking error")
	ErrAdmin   = errors.New("admin error")
)

// Causes wrapped inside a kind.
var (
	ErrValidation = errors.New("invalid input")
	ErrDecode     = errors.New("unexpected response body")
)

// Errors raised by the stand-in backend.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("admin access required")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidTariff      = errors.New("invalid tariff")
	ErrNoFields           = errors.New("no fields to update")
	ErrMissingFields      = errors.New("missing required fields")
	ErrWeakPassword       = errors.New("password too short")
	ErrGuestContact       = errors.New("guest name and phone required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)
