package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloodconnect/donation-system/internal/core/domain"
	"github.com/bloodconnect/donation-system/internal/core/ports"
)

type RequestService struct {
	repo   ports.RequestRepository
	logger zerolog.Logger
}

func NewRequestService(repo ports.RequestRepository, logger zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, logger: logger}
}

// Submit validates the input and persists a new blood request. Blood units
// default to 1 and urgency to Medium when omitted; status is always Pending
// regardless of input. Returns the generated id.
func (s *RequestService) Submit(ctx context.Context, input ports.SubmitRequestInput) (string, error) {
	request, err := buildRequest(input)
	if err != nil {
		return "", err
	}

	id, err := s.repo.Insert(ctx, request)
	if err != nil {
		return "", fmt.Errorf("submit request: %w", err)
	}

	s.logger.Info().
		Str("request_id", id).
		Str("blood_group", string(request.RequiredBloodGroup)).
		Str("urgency", string(request.Urgency)).
		Int("blood_units", request.BloodUnits).
		Msg("blood request submitted")

	return id, nil
}

// ListAll returns every request newest-first. This is the public board view.
func (s *RequestService) ListAll(ctx context.Context) ([]*domain.BloodRequest, error) {
	return s.repo.Find(ctx, "")
}

// ListByStatus returns requests with the given status, newest-first. An
// empty status is equivalent to ListAll; anything else must be one of the
// three enumerated values.
func (s *RequestService) ListByStatus(ctx context.Context, status string) ([]*domain.BloodRequest, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return s.ListAll(ctx)
	}

	st := domain.RequestStatus(status)
	if !st.Valid() {
		return nil, domain.NewValidationError("status", "must be one of Pending, Fulfilled, Cancelled")
	}
	return s.repo.Find(ctx, st)
}

// UpdateStatus transitions a request to the given status and returns the
// updated record. Any of the three statuses may be set at any time; a
// fulfilled or cancelled request can be re-opened.
func (s *RequestService) UpdateStatus(ctx context.Context, id, status string) (*domain.BloodRequest, error) {
	st := domain.RequestStatus(strings.TrimSpace(status))
	if !st.Valid() {
		return nil, domain.NewValidationError("status", "must be one of Pending, Fulfilled, Cancelled")
	}

	request, err := s.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("request_id", id).
		Str("status", string(st)).
		Msg("request status updated")

	return request, nil
}

// Delete removes the request and returns the removed record for confirmation.
func (s *RequestService) Delete(ctx context.Context, id string) (*domain.BloodRequest, error) {
	request, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("request_id", id).Msg("blood request deleted")
	return request, nil
}

// buildRequest validates submission input and assembles the entity with
// defaults applied.
func buildRequest(input ports.SubmitRequestInput) (*domain.BloodRequest, error) {
	patient := strings.TrimSpace(input.PatientName)
	if patient == "" {
		return nil, domain.NewValidationError("patient_name", "is required")
	}

	group := domain.BloodGroup(strings.TrimSpace(input.RequiredBloodGroup))
	if !group.Valid() {
		return nil, domain.NewValidationError("required_blood_group", "unknown blood group")
	}

	location := strings.TrimSpace(input.Location)
	if location == "" {
		return nil, domain.NewValidationError("location", "is required")
	}
	hospital := strings.TrimSpace(input.HospitalName)
	if hospital == "" {
		return nil, domain.NewValidationError("hospital_name", "is required")
	}

	units := input.BloodUnits
	if units == 0 {
		units = domain.MinBloodUnits
	}
	if units < domain.MinBloodUnits || units > domain.MaxBloodUnits {
		return nil, domain.NewValidationError("blood_units", fmt.Sprintf("must be between %d and %d", domain.MinBloodUnits, domain.MaxBloodUnits))
	}

	urgency := domain.Urgency(strings.TrimSpace(input.Urgency))
	if urgency == "" {
		urgency = domain.UrgencyMedium
	}
	if !urgency.Valid() {
		return nil, domain.NewValidationError("urgency", "must be one of Low, Medium, High, Critical")
	}

	phone := strings.TrimSpace(input.ContactPhone)
	if phone == "" {
		return nil, domain.NewValidationError("contact_phone", "is required")
	}
	email := strings.ToLower(strings.TrimSpace(input.ContactEmail))
	if email == "" {
		return nil, domain.NewValidationError("contact_email", "is required")
	}

	return &domain.BloodRequest{
		PatientName:        patient,
		RequiredBloodGroup: group,
		Location:           location,
		HospitalName:       hospital,
		BloodUnits:         units,
		Urgency:            urgency,
		Status:             domain.StatusPending,
		ContactPhone:       phone,
		ContactEmail:       email,
		CreatedAt:          time.Now().UTC(),
	}, nil
}
