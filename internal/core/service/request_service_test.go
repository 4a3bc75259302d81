package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bloodconnect/donation-system/internal/core/domain"
	"github.com/bloodconnect/donation-system/internal/core/ports"
)

type stubRequestRepo struct {
	requests []*domain.BloodRequest // newest last; Find returns newest-first
	nextID   int
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{}
}

func cloneRequest(r *domain.BloodRequest) *domain.BloodRequest {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func (s *stubRequestRepo) Insert(_ context.Context, r *domain.BloodRequest) (string, error) {
	s.nextID++
	clone := cloneRequest(r)
	clone.ID = fmt.Sprintf("req_%d", s.nextID)
	s.requests = append(s.requests, clone)
	return clone.ID, nil
}

func (s *stubRequestRepo) Find(_ context.Context, status domain.RequestStatus) ([]*domain.BloodRequest, error) {
	out := make([]*domain.BloodRequest, 0)
	for i := len(s.requests) - 1; i >= 0; i-- {
		r := s.requests[i]
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, cloneRequest(r))
	}
	return out, nil
}

func (s *stubRequestRepo) UpdateStatus(_ context.Context, id string, status domain.RequestStatus) (*domain.BloodRequest, error) {
	for _, r := range s.requests {
		if r.ID == id {
			r.Status = status
			return cloneRequest(r), nil
		}
	}
	return nil, domain.ErrRequestNotFound
}

func (s *stubRequestRepo) Delete(_ context.Context, id string) (*domain.BloodRequest, error) {
	for i, r := range s.requests {
		if r.ID == id {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			return cloneRequest(r), nil
		}
	}
	return nil, domain.ErrRequestNotFound
}

func validRequestInput() ports.SubmitRequestInput {
	return ports.SubmitRequestInput{
		PatientName:        "Alex Doe",
		RequiredBloodGroup: "O-",
		Location:           "Denver",
		HospitalName:       "General",
		ContactPhone:       "555-666-7777",
		ContactEmail:       "Alex.Doe@Email.com",
	}
}

func newRequestService(repo ports.RequestRepository) *RequestService {
	return NewRequestService(repo, zerolog.Nop())
}

func TestRequestService_Submit_Defaults(t *testing.T) {
	svc := newRequestService(newStubRequestRepo())

	id, err := svc.Submit(context.Background(), validRequestInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if id == "" {
		t.Fatalf("expected non-empty id")
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 request, got %d", len(all))
	}
	r := all[0]
	if r.Status != domain.StatusPending {
		t.Fatalf("status must initialise to Pending, got %s", r.Status)
	}
	if r.BloodUnits != 1 {
		t.Fatalf("blood_units must default to 1, got %d", r.BloodUnits)
	}
	if r.Urgency != domain.UrgencyMedium {
		t.Fatalf("urgency must default to Medium, got %s", r.Urgency)
	}
	if r.ContactEmail != "alex.doe@email.com" {
		t.Fatalf("email not lower-cased: %s", r.ContactEmail)
	}
}

func TestRequestService_Submit_UnitBounds(t *testing.T) {
	repo := newStubRequestRepo()
	svc := newRequestService(repo)

	var ve *domain.ValidationError
	for _, units := range []int{-1, 21, 100} {
		input := validRequestInput()
		input.BloodUnits = units
		if _, err := svc.Submit(context.Background(), input); !errors.As(err, &ve) {
			t.Fatalf("units %d: expected ValidationError, got %v", units, err)
		}
	}
	if len(repo.requests) != 0 {
		t.Fatalf("no request should be persisted after rejected submissions")
	}

	input := validRequestInput()
	input.BloodUnits = 20
	if _, err := svc.Submit(context.Background(), input); err != nil {
		t.Fatalf("20 units should be accepted: %v", err)
	}
}

func TestRequestService_Submit_InvalidEnums(t *testing.T) {
	svc := newRequestService(newStubRequestRepo())

	var ve *domain.ValidationError
	input := validRequestInput()
	input.RequiredBloodGroup = "Z+"
	if _, err := svc.Submit(context.Background(), input); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for bad blood group, got %v", err)
	}

	input = validRequestInput()
	input.Urgency = "Panic"
	if _, err := svc.Submit(context.Background(), input); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for bad urgency, got %v", err)
	}
}

func TestRequestService_ListByStatus(t *testing.T) {
	svc := newRequestService(newStubRequestRepo())

	id1, _ := svc.Submit(context.Background(), validRequestInput())
	input := validRequestInput()
	input.PatientName = "Second Patient"
	if _, err := svc.Submit(context.Background(), input); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), id1, "Fulfilled"); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	pending, err := svc.ListByStatus(context.Background(), "Pending")
	if err != nil {
		t.Fatalf("ListByStatus failed: %v", err)
	}
	if len(pending) != 1 || pending[0].PatientName != "Second Patient" {
		t.Fatalf("unexpected pending set: %+v", pending)
	}

	// Empty status behaves like ListAll.
	everything, err := svc.ListByStatus(context.Background(), "")
	if err != nil {
		t.Fatalf("ListByStatus(\"\") failed: %v", err)
	}
	if len(everything) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(everything))
	}

	var ve *domain.ValidationError
	if _, err := svc.ListByStatus(context.Background(), "Bogus"); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for unknown status, got %v", err)
	}
}

func TestRequestService_UpdateStatus_InvalidValue(t *testing.T) {
	repo := newStubRequestRepo()
	svc := newRequestService(repo)
	id, _ := svc.Submit(context.Background(), validRequestInput())

	var ve *domain.ValidationError
	if _, err := svc.UpdateStatus(context.Background(), id, "Bogus"); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.requests[0].Status != domain.StatusPending {
		t.Fatalf("status must be unchanged after rejected update, got %s", repo.requests[0].Status)
	}
}

func TestRequestService_UpdateStatus_Reversible(t *testing.T) {
	svc := newRequestService(newStubRequestRepo())
	id, _ := svc.Submit(context.Background(), validRequestInput())

	// The board deliberately allows re-opening a terminal status.
	for _, status := range []string{"Fulfilled", "Pending", "Cancelled", "Pending"} {
		r, err := svc.UpdateStatus(context.Background(), id, status)
		if err != nil {
			t.Fatalf("transition to %s failed: %v", status, err)
		}
		if string(r.Status) != status {
			t.Fatalf("expected status %s, got %s", status, r.Status)
		}
	}
}

func TestRequestService_UpdateStatus_NotFound(t *testing.T) {
	svc := newRequestService(newStubRequestRepo())

	_, err := svc.UpdateStatus(context.Background(), "missing", "Fulfilled")
	if !errors.Is(err, domain.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestRequestService_Delete(t *testing.T) {
	svc := newRequestService(newStubRequestRepo())
	id, _ := svc.Submit(context.Background(), validRequestInput())

	deleted, err := svc.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.ID != id {
		t.Fatalf("expected deleted record returned, got %+v", deleted)
	}

	if _, err := svc.Delete(context.Background(), id); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound on second delete, got %v", err)
	}
}
