package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrShtrahman/mongo-M220-project/data_access"
	"github.com/MrShtrahman/mongo-M220-project/models"
)

const (
	tokenTTL   = 4 * time.Hour
	bcryptCost = 10

	minPasswordLen = 8
	minNameLen     = 3
)

type AuthService struct {
	userRepo  *data_access.UserRepository
	jwtSecret string

	// Injected clock; tests pin it to exercise the expiry boundary.
	now func() time.Time
}

func NewAuthService(userRepo *data_access.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		now:       time.Now,
	}
}

// AuthResult is a successful registration or login: a signed token plus the
// public view of the user it represents.
type AuthResult struct {
	Token string
	User  *models.User
}

// Register validates the request, hashes the password, persists the user,
// and hands back a signed token. A duplicate email surfaces as
// data_access.ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*AuthResult, error) {
	if len(req.Password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}
	if len(req.Name) < minNameLen {
		return nil, ErrNameTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("unable to hash password: %w", err)
	}

	user := &models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashed),
		Preferences: map[string]interface{}{},
	}
	if err := s.userRepo.AddUser(ctx, user); err != nil {
		return nil, err
	}

	stored, err := s.userRepo.GetUser(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	token, err := s.IssueToken(stored)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: stored}, nil
}

// Login verifies the password against the stored hash, issues a fresh token,
// and upserts the session record keyed by email.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*AuthResult, error) {
	user, err := s.userRepo.GetUser(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.LoginUser(ctx, user.Email, token); err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Logout removes the caller's session record. Removing a session that does
// not exist is fine; already-issued tokens stay valid until they expire.
func (s *AuthService) Logout(ctx context.Context, claims *models.UserClaims) error {
	return s.userRepo.LogoutUser(ctx, claims.Email)
}

// DeleteAccount re-verifies the supplied password against the stored hash
// before removing the user and any session it owns.
func (s *AuthService) DeleteAccount(ctx context.Context, claims *models.UserClaims, password string) error {
	user, err := s.userRepo.GetUser(ctx, claims.Email)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return s.userRepo.DeleteUser(ctx, claims.Email)
}

// UpdatePreferences stores the new preferences and returns a fresh token
// carrying them.
func (s *AuthService) UpdatePreferences(ctx context.Context, claims *models.UserClaims, preferences map[string]interface{}) (*AuthResult, error) {
	if err := s.userRepo.UpdatePreferences(ctx, claims.Email, preferences); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetUser(ctx, claims.Email)
	if err != nil {
		return nil, err
	}
	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// IsAdmin reports whether the user behind the claims carries the admin flag.
func (s *AuthService) IsAdmin(ctx context.Context, claims *models.UserClaims) (bool, error) {
	return s.userRepo.CheckAdmin(ctx, claims.Email)
}

// CreateAdminUser registers a user, elevates it, and opens a session.
// Reachable only through the internal make-admin route.
func (s *AuthService) CreateAdminUser(ctx context.Context, req *models.RegisterRequest) (*AuthResult, error) {
	result, err := s.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.MakeAdmin(ctx, req.Email); err != nil {
		return nil, err
	}
	if err := s.userRepo.LoginUser(ctx, req.Email, result.Token); err != nil {
		return nil, err
	}
	return result, nil
}

// IssueToken signs an HS256 token embedding the user's name, email, and
// preferences, expiring four hours from now.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	claims := models.UserClaims{
		Name:        user.Name,
		Email:       user.Email,
		Preferences: user.Preferences,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("unable to sign token: %w", err)
	}
	return signed, nil
}

// DecodeToken verifies signature and expiry and returns the embedded
// claims. Stateless: the session store is never consulted here.
func (s *AuthService) DecodeToken(tokenString string) (*models.UserClaims, error) {
	claims := &models.UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(s.jwtSecret), nil
		},
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
