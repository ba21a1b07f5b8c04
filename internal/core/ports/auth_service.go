package ports

import (
	"context"

	"github.com/primekart/storefront-api/internal/core/domain"
)

// AuthService implements registration, login, and profile operations.
type AuthService interface {
	// Register creates a user with the "user" role and returns the created
	// account together with a freshly issued token.
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// CurrentUser loads the full account backing the principal.
	CurrentUser(ctx context.Context, principal domain.Principal) (*domain.User, error)
	// UpdateProfile applies the given fields to the target user. Only the
	// owner or an admin may update; role and password are always stripped.
	UpdateProfile(ctx context.Context, principal domain.Principal, userID string, fields map[string]any) error
	// Logout revokes the presented token until its natural expiry.
	Logout(ctx context.Context, claims *TokenClaims) error
}
