package handler

import "github.com/bloodconnect/donation-system/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerDonorRequest struct {
	Name         string `json:"name"          validate:"required"`
	Age          int    `json:"age"           validate:"required,gte=18,lte=100"`
	Gender       string `json:"gender"        validate:"required,oneof=Male Female Other"`
	BloodGroup   string `json:"blood_group"   validate:"required,oneof=O+ O- A+ A- B+ B- AB+ AB-"`
	ContactPhone string `json:"contact_phone" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	City         string `json:"city"          validate:"required"`
}

type registerDonorResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// updateAvailabilityRequest uses a bool pointer so a missing or non-boolean
// is_available is rejected rather than defaulting to false.
type updateAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

// donorEnvelope wraps a donor record with a human-readable confirmation,
// returned by the admin mutation endpoints.
type donorEnvelope struct {
	Message string        `json:"message"`
	Donor   *domain.Donor `json:"donor"`
}
