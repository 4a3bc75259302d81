package ports

import (
	"context"

	"github.com/bloodconnect/donation-system/internal/core/domain"
)

// DonorFilter carries the query options for listing donors. Zero values mean
// "no constraint" for that field.
type DonorFilter struct {
	BloodGroup    string // exact match when non-empty
	City          string // case-insensitive substring match when non-empty
	OnlyAvailable bool   // restrict to is_available = true
}

// DonorRepository defines persistence operations for donors.
type DonorRepository interface {
	// Insert persists a new donor and returns its generated id.
	// Returns domain.ErrDonorEmailExists when the contact email is taken.
	Insert(ctx context.Context, d *domain.Donor) (string, error)

	// Find returns donors matching filter, newest-first.
	Find(ctx context.Context, filter DonorFilter) ([]*domain.Donor, error)

	// SetAvailability updates the availability flag and returns the updated
	// donor. Returns domain.ErrDonorNotFound when id is absent.
	SetAvailability(ctx context.Context, id string, available bool) (*domain.Donor, error)

	// Delete removes the donor and returns the removed record.
	// Returns domain.ErrDonorNotFound when id is absent.
	Delete(ctx context.Context, id string) (*domain.Donor, error)
}
