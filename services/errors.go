package services

import "errors"

// Validation and authorization failures surfaced to the HTTP layer. The
// controllers map these onto 400/401 responses with errors.Is.
var (
	ErrPasswordTooShort   = errors.New("your password must be at least 8 characters")
	ErrNameTooShort       = errors.New("you must specify a name of at least 3 characters")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
