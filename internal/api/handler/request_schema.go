package handler

import "github.com/bloodconnect/donation-system/internal/core/domain"

type submitRequestRequest struct {
	PatientName        string `json:"patient_name"         validate:"required"`
	RequiredBloodGroup string `json:"required_blood_group" validate:"required,oneof=O+ O- A+ A- B+ B- AB+ AB-"`
	Location           string `json:"location"             validate:"required"`
	HospitalName       string `json:"hospital_name"        validate:"required"`
	BloodUnits         int    `json:"blood_units"          validate:"omitempty,gte=1,lte=20"`
	Urgency            string `json:"urgency"              validate:"omitempty,oneof=Low Medium High Critical"`
	ContactPhone       string `json:"contact_phone"        validate:"required"`
	ContactEmail       string `json:"contact_email"        validate:"required,email"`
}

type submitRequestResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Fulfilled Cancelled"`
}

// requestEnvelope wraps a request record with a confirmation message,
// returned by the admin mutation endpoints.
type requestEnvelope struct {
	Message string               `json:"message"`
	Request *domain.BloodRequest `json:"request"`
}
