package domain

import (
	"errors"
	"time"
)

// RequestStatus is the fulfillment state of a blood request.
type RequestStatus string

const (
	StatusPending   RequestStatus = "Pending"
	StatusFulfilled RequestStatus = "Fulfilled"
	StatusCancelled RequestStatus = "Cancelled"
)

// Valid reports whether s is one of the three enumerated statuses.
// Transitions between any pair of statuses are permitted; an administrator
// may re-open a fulfilled or cancelled request.
func (s RequestStatus) Valid() bool {
	return s == StatusPending || s == StatusFulfilled || s == StatusCancelled
}

// Urgency classifies how pressing a request is. Informational only; it does
// not drive any automated prioritisation.
type Urgency string

const (
	UrgencyLow      Urgency = "Low"
	UrgencyMedium   Urgency = "Medium"
	UrgencyHigh     Urgency = "High"
	UrgencyCritical Urgency = "Critical"
)

// Valid reports whether u is one of the enumerated urgency levels.
func (u Urgency) Valid() bool {
	return u == UrgencyLow || u == UrgencyMedium || u == UrgencyHigh || u == UrgencyCritical
}

// Blood unit bounds accepted at submission.
const (
	MinBloodUnits = 1
	MaxBloodUnits = 20
)

var ErrRequestNotFound = errors.New("blood request not found")

// BloodRequest is a posted need for blood units. Status is the only field
// mutated after submission, and only by an administrator.
type BloodRequest struct {
	ID                 string        `json:"id"`
	PatientName        string        `json:"patient_name"`
	RequiredBloodGroup BloodGroup    `json:"required_blood_group"`
	Location           string        `json:"location"`
	HospitalName       string        `json:"hospital_name"`
	BloodUnits         int           `json:"blood_units"`
	Urgency            Urgency       `json:"urgency"`
	Status             RequestStatus `json:"status"`
	ContactPhone       string        `json:"contact_phone"`
	ContactEmail       string        `json:"contact_email"`
	CreatedAt          time.Time     `json:"created_at"`
}
