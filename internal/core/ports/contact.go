package ports

import (
	"context"

	"github.com/bloodconnect/donation-system/internal/core/domain"
)

// ContactRepository persists contact-form messages.
type ContactRepository interface {
	Insert(ctx context.Context, m *domain.ContactMessage) error
}

// SubmitContactInput carries a contact-form submission.
type SubmitContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService stores contact-form messages.
type ContactService interface {
	Submit(ctx context.Context, input SubmitContactInput) error
}
