package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the payload embedded in every issued token. Verification
// checks signature and expiry only; the session record is not consulted.
type UserClaims struct {
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	Preferences map[string]interface{} `json:"preferences,omitempty"`
	jwt.RegisteredClaims
}
