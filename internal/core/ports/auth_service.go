package ports

import (
	"context"

	"github.com/bloodconnect/donation-system/internal/core/domain"
)

// AdminClaims are the decoded contents of a verified bearer token.
type AdminClaims struct {
	ID       string
	Username string
	Role     string
}

// AuthService issues and verifies administrator bearer tokens.
type AuthService interface {
	// Register creates an admin account. Role defaults to Admin when empty.
	Register(ctx context.Context, username, email, password, role string) (*domain.Admin, error)

	// Login verifies credentials and returns a signed bearer token plus the
	// account. Fails with domain.ErrInvalidCredentials on unknown username
	// or wrong password, without distinguishing the two.
	Login(ctx context.Context, username, password string) (string, *domain.Admin, error)

	// Verify checks the token signature and expiry and returns the claims.
	Verify(token string) (*AdminClaims, error)

	// ListAdmins returns every admin account, newest-first.
	ListAdmins(ctx context.Context) ([]*domain.Admin, error)

	// EnsureDefaultAdmin creates the bootstrap account when no admin exists
	// yet. A no-op otherwise.
	EnsureDefaultAdmin(ctx context.Context, username, email, password string) error
}
