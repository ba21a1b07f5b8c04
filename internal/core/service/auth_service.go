package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/primekart/storefront-api/internal/core/domain"
	"github.com/primekart/storefront-api/internal/core/ports"
)

// bcryptCost matches the interactive-login work factor the store was
// provisioned with; raising it invalidates no existing hashes.
const bcryptCost = 10

// AuthService implements registration, login, and profile operations.
type AuthService struct {
	users   ports.UserRepository
	tokens  ports.TokenService
	revoker ports.TokenRevoker
	logger  zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, revoker ports.TokenRevoker, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, revoker: revoker, logger: logger}
}

// Register creates an account with the "user" role. Email is lower-cased
// before the uniqueness check so a@x.com and A@X.com are the same identity.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}
	email = strings.ToLower(email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("email", created.Email).Str("user_id", created.ID).Msg("user registered")
	return created, token, nil
}

// Login verifies credentials and issues a fresh token. A missing user and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("email", user.Email).Msg("user logged in")
	return user, token, nil
}

// CurrentUser loads the full account backing the principal.
func (s *AuthService) CurrentUser(ctx context.Context, principal domain.Principal) (*domain.User, error) {
	return s.users.FindByID(ctx, principal.ID)
}

// UpdateProfile applies the given fields to the target user. Allowed for
// the owner and for admins; role and password can never be changed here.
func (s *AuthService) UpdateProfile(ctx context.Context, principal domain.Principal, userID string, fields map[string]any) error {
	if !principal.IsAdmin() && principal.ID != userID {
		return domain.ErrForbidden
	}

	delete(fields, "role")
	delete(fields, "password")

	return s.users.UpdateProfile(ctx, userID, fields)
}

// Logout revokes the presented token for the remainder of its lifetime.
// Tokens without a revocation store configured expire naturally.
func (s *AuthService) Logout(ctx context.Context, claims *ports.TokenClaims) error {
	if s.revoker == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.JTI, ttl); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", claims.Principal.ID).Msg("token revoked")
	return nil
}
