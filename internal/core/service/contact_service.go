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

// DedupChecker abstracts the duplicate-submission store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, email, message string) (bool, error)
	Mark(ctx context.Context, email, message string) error
}

type ContactService struct {
	repo   ports.ContactRepository
	dedup  DedupChecker
	logger zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, dedup DedupChecker, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, dedup: dedup, logger: logger}
}

// Submit stores a contact-form message. A resubmission of the same message
// by the same email within the dedup window is accepted but not re-stored.
func (s *ContactService) Submit(ctx context.Context, input ports.SubmitContactInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.NewValidationError("name", "is required")
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return domain.NewValidationError("email", "is required")
	}
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return domain.NewValidationError("subject", "is required")
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return domain.NewValidationError("message", "is required")
	}

	if s.dedup != nil {
		isDup, err := s.dedup.IsDuplicate(ctx, email, message)
		if err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("contact dedup check failed, storing anyway")
		} else if isDup {
			s.logger.Debug().Str("email", email).Msg("duplicate contact message skipped")
			return nil
		}
	}

	msg := &domain.ContactMessage{
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, msg); err != nil {
		return fmt.Errorf("submit contact message: %w", err)
	}

	if s.dedup != nil {
		if err := s.dedup.Mark(ctx, email, message); err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("failed to set contact dedup key")
		}
	}

	s.logger.Info().Str("email", email).Msg("contact message stored")
	return nil
}
