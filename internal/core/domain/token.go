package domain

import "errors"

// Token validation failures, distinguished so callers can log the reason.
// All of them map to the same 401 at the HTTP boundary.
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenRevoked = errors.New("token revoked")

// Principal is the authenticated identity extracted from a validated token.
type Principal struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
