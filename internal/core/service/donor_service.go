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

// bloodGroupAny is the reserved filter token that matches every blood group.
// Compared case-insensitively after trimming.
const bloodGroupAny = "any"

type DonorService struct {
	repo   ports.DonorRepository
	logger zerolog.Logger
}

func NewDonorService(repo ports.DonorRepository, logger zerolog.Logger) *DonorService {
	return &DonorService{repo: repo, logger: logger}
}

// Register validates the input and persists a new donor with availability
// switched on. Returns the generated id.
func (s *DonorService) Register(ctx context.Context, input ports.RegisterDonorInput) (string, error) {
	donor, err := buildDonor(input)
	if err != nil {
		return "", err
	}

	id, err := s.repo.Insert(ctx, donor)
	if err != nil {
		return "", fmt.Errorf("register donor: %w", err)
	}

	s.logger.Info().
		Str("donor_id", id).
		Str("blood_group", string(donor.BloodGroup)).
		Str("city", donor.City).
		Msg("donor registered")

	return id, nil
}

// ListAvailable returns all donors with availability switched on, newest-first.
func (s *DonorService) ListAvailable(ctx context.Context) ([]*domain.Donor, error) {
	return s.repo.Find(ctx, ports.DonorFilter{OnlyAvailable: true})
}

// Search returns available donors matching the public search filters.
// A blood group of "any" (case-insensitive) or empty matches every group;
// the city filter is a case-insensitive substring match. Both filters
// combine with logical AND.
func (s *DonorService) Search(ctx context.Context, input ports.SearchDonorsInput) ([]*domain.Donor, error) {
	filter := ports.DonorFilter{OnlyAvailable: true}

	group := strings.TrimSpace(input.BloodGroup)
	if group != "" && !strings.EqualFold(group, bloodGroupAny) {
		filter.BloodGroup = group
	}
	filter.City = strings.TrimSpace(input.City)

	return s.repo.Find(ctx, filter)
}

// ListAll returns every donor regardless of availability, newest-first.
func (s *DonorService) ListAll(ctx context.Context) ([]*domain.Donor, error) {
	return s.repo.Find(ctx, ports.DonorFilter{})
}

// SetAvailability flips the donor's availability flag and returns the
// updated record.
func (s *DonorService) SetAvailability(ctx context.Context, id string, available bool) (*domain.Donor, error) {
	donor, err := s.repo.SetAvailability(ctx, id, available)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("donor_id", id).
		Bool("is_available", available).
		Msg("donor availability updated")

	return donor, nil
}

// Delete removes the donor and returns the removed record for confirmation.
func (s *DonorService) Delete(ctx context.Context, id string) (*domain.Donor, error) {
	donor, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("donor_id", id).Msg("donor profile deleted")
	return donor, nil
}

// buildDonor validates registration input and assembles the entity.
// Text fields are trimmed and the contact email is lower-cased for storage.
func buildDonor(input ports.RegisterDonorInput) (*domain.Donor, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}
	if input.Age < domain.MinDonorAge || input.Age > domain.MaxDonorAge {
		return nil, domain.NewValidationError("age", fmt.Sprintf("must be between %d and %d", domain.MinDonorAge, domain.MaxDonorAge))
	}

	gender := domain.Gender(strings.TrimSpace(input.Gender))
	if !gender.Valid() {
		return nil, domain.NewValidationError("gender", "must be one of Male, Female, Other")
	}

	group := domain.BloodGroup(strings.TrimSpace(input.BloodGroup))
	if !group.Valid() {
		return nil, domain.NewValidationError("blood_group", "unknown blood group")
	}

	phone := strings.TrimSpace(input.ContactPhone)
	if phone == "" {
		return nil, domain.NewValidationError("contact_phone", "is required")
	}
	email := strings.ToLower(strings.TrimSpace(input.ContactEmail))
	if email == "" {
		return nil, domain.NewValidationError("contact_email", "is required")
	}
	city := strings.TrimSpace(input.City)
	if city == "" {
		return nil, domain.NewValidationError("city", "is required")
	}

	return &domain.Donor{
		Name:         name,
		Age:          input.Age,
		Gender:       gender,
		BloodGroup:   group,
		ContactPhone: phone,
		ContactEmail: email,
		City:         city,
		IsAvailable:  true,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
