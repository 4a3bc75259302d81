package ports

import (
	"context"

	"github.com/bloodconnect/donation-system/internal/core/domain"
)

// AdminRepository defines the interface for administrator account persistence.
type AdminRepository interface {
	// Insert persists a new admin account. Returns domain.ErrAdminExists
	// when the username or email is already taken.
	Insert(ctx context.Context, a *domain.Admin) (*domain.Admin, error)

	// FindByUsername returns the account with the given username.
	// Returns domain.ErrAdminNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)

	// FindAll returns every admin account, newest-first.
	FindAll(ctx context.Context) ([]*domain.Admin, error)

	// Count returns the number of admin accounts.
	Count(ctx context.Context) (int64, error)
}
