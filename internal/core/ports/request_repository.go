package ports

import (
	"context"

	"github.com/bloodconnect/donation-system/internal/core/domain"
)

// RequestRepository defines persistence operations for blood requests.
type RequestRepository interface {
	// Insert persists a new request and returns its generated id.
	Insert(ctx context.Context, r *domain.BloodRequest) (string, error)

	// Find returns requests newest-first. When status is non-empty only
	// requests with that exact status are returned.
	Find(ctx context.Context, status domain.RequestStatus) ([]*domain.BloodRequest, error)

	// UpdateStatus sets the request status and returns the updated record.
	// Returns domain.ErrRequestNotFound when id is absent.
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.BloodRequest, error)

	// Delete removes the request and returns the removed record.
	// Returns domain.ErrRequestNotFound when id is absent.
	Delete(ctx context.Context, id string) (*domain.BloodRequest, error)
}
