package ports

import (
	"context"

	"github.com/primekart/storefront-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile applies the given field set to the user document.
	// Role and password hash must already be stripped by the caller.
	UpdateProfile(ctx context.Context, id string, fields map[string]any) error
	Count(ctx context.Context) (int64, error)
}
