package ports

import (
	"context"

	"github.com/bloodconnect/donation-system/internal/core/domain"
)

// SubmitRequestInput carries all data needed to post a blood request.
// BloodUnits defaults to 1 and Urgency to Medium when left zero-valued.
type SubmitRequestInput struct {
	PatientName        string
	RequiredBloodGroup string
	Location           string
	HospitalName       string
	BloodUnits         int
	Urgency            string
	ContactPhone       string
	ContactEmail       string
}

// RequestService defines use-case operations on the request board.
type RequestService interface {
	Submit(ctx context.Context, input SubmitRequestInput) (string, error)
	ListAll(ctx context.Context) ([]*domain.BloodRequest, error)
	// ListByStatus filters by exact status; an empty status is equivalent
	// to ListAll.
	ListByStatus(ctx context.Context, status string) ([]*domain.BloodRequest, error)
	// UpdateStatus transitions a request to any of the three statuses.
	// Administrator-only.
	UpdateStatus(ctx context.Context, id, status string) (*domain.BloodRequest, error)
	// Delete removes a request. Administrator-only.
	Delete(ctx context.Context, id string) (*domain.BloodRequest, error)
}
