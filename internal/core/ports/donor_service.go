package ports

import (
	"context"

	"github.com/bloodconnect/donation-system/internal/core/domain"
)

// RegisterDonorInput carries all data needed to register a donor.
type RegisterDonorInput struct {
	Name         string
	Age          int
	Gender       string
	BloodGroup   string
	ContactPhone string
	ContactEmail string
	City         string
}

// SearchDonorsInput carries the public search filters. BloodGroup equal to
// the case-insensitive sentinel "any" (or empty) matches every group; City
// matches as a case-insensitive substring. Availability is always required.
type SearchDonorsInput struct {
	BloodGroup string
	City       string
}

// DonorService defines use-case operations on the donor directory.
type DonorService interface {
	Register(ctx context.Context, input RegisterDonorInput) (string, error)
	ListAvailable(ctx context.Context) ([]*domain.Donor, error)
	Search(ctx context.Context, input SearchDonorsInput) ([]*domain.Donor, error)
	// ListAll returns every donor regardless of availability. Administrator-only.
	ListAll(ctx context.Context) ([]*domain.Donor, error)
	SetAvailability(ctx context.Context, id string, available bool) (*domain.Donor, error)
	Delete(ctx context.Context, id string) (*domain.Donor, error)
}
