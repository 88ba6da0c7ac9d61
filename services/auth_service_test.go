package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrShtrahman/mongo-M220-project/models"
)

func newTestAuthService() *AuthService {
	// No store behind it; these tests only exercise validation and the
	// token lifecycle, which never touch the repository.
	return NewAuthService(nil, "test-secret")
}

func TestRegister_PasswordTooShort(t *testing.T) {
	s := newTestAuthService()

	_, err := s.Register(context.Background(), &models.RegisterRequest{
		Name:     "Natalia",
		Email:    "natalia@example.com",
		Password: "1234567", // 7 chars
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegister_NameTooShort(t *testing.T) {
	s := newTestAuthService()

	// An 8-char password passes the length check, so the name check is the
	// one that fires.
	_, err := s.Register(context.Background(), &models.RegisterRequest{
		Name:     "Al",
		Email:    "al@example.com",
		Password: "12345678",
	})
	assert.ErrorIs(t, err, ErrNameTooShort)
}

func TestIssueAndDecodeToken_RoundTrip(t *testing.T) {
	s := newTestAuthService()

	user := &models.User{
		Name:  "Natalia",
		Email: "natalia@example.com",
		Preferences: map[string]interface{}{
			"favorite_cast": "Tom Hanks",
		},
	}

	token, err := s.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Natalia", claims.Name)
	assert.Equal(t, "natalia@example.com", claims.Email)
	assert.Equal(t, "Tom Hanks", claims.Preferences["favorite_cast"])
}

func TestDecodeToken_WrongSecret(t *testing.T) {
	s := newTestAuthService()
	token, err := s.IssueToken(&models.User{Name: "N", Email: "n@example.com"})
	require.NoError(t, err)

	other := NewAuthService(nil, "different-secret")
	_, err = other.DecodeToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeToken_Garbage(t *testing.T) {
	s := newTestAuthService()
	_, err := s.DecodeToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeToken_ExpiryBoundary(t *testing.T) {
	s := newTestAuthService()

	issuedAt := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issuedAt }

	token, err := s.IssueToken(&models.User{Name: "Natalia", Email: "natalia@example.com"})
	require.NoError(t, err)

	// Still valid one minute before the four hour expiry.
	s.now = func() time.Time { return issuedAt.Add(3*time.Hour + 59*time.Minute) }
	claims, err := s.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "natalia@example.com", claims.Email)

	// Rejected one minute after.
	s.now = func() time.Time { return issuedAt.Add(4*time.Hour + 1*time.Minute) }
	_, err = s.DecodeToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeToken_IgnoresSessionStore(t *testing.T) {
	// Verification is stateless: a token decodes fine even though there is
	// no session store at all behind this service.
	s := newTestAuthService()
	token, err := s.IssueToken(&models.User{Name: "Natalia", Email: "natalia@example.com"})
	require.NoError(t, err)

	_, err = s.DecodeToken(token)
	assert.NoError(t, err)
}
