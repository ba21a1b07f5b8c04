package ports

import (
	"context"
	"time"

	"github.com/primekart/storefront-api/internal/core/domain"
)

// TokenClaims is the decoded content of a validated token.
type TokenClaims struct {
	Principal domain.Principal
	JTI       string
	ExpiresAt time.Time
}

// TokenService issues and validates signed, self-contained identity tokens.
type TokenService interface {
	// Issue signs a token embedding the user's identity claims. The token
	// expires a fixed window after issuance.
	Issue(user *domain.User) (string, error)
	// Validate verifies signature and expiry and returns the embedded
	// claims. Failures are reported as the domain token sentinels.
	Validate(token string) (*TokenClaims, error)
}

// TokenRevoker records revoked token IDs until their natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
