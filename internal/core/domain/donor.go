package domain

import (
	"errors"
	"time"
)

// BloodGroup is one of the eight ABO/Rh blood groups.
type BloodGroup string

const (
	BloodOPositive  BloodGroup = "O+"
	BloodONegative  BloodGroup = "O-"
	BloodAPositive  BloodGroup = "A+"
	BloodANegative  BloodGroup = "A-"
	BloodBPositive  BloodGroup = "B+"
	BloodBNegative  BloodGroup = "B-"
	BloodABPositive BloodGroup = "AB+"
	BloodABNegative BloodGroup = "AB-"
)

// BloodGroups lists every accepted group, in the order forms present them.
var BloodGroups = []BloodGroup{
	BloodOPositive, BloodONegative,
	BloodAPositive, BloodANegative,
	BloodBPositive, BloodBNegative,
	BloodABPositive, BloodABNegative,
}

// Valid reports whether g is one of the eight enumerated groups.
func (g BloodGroup) Valid() bool {
	for _, known := range BloodGroups {
		if g == known {
			return true
		}
	}
	return false
}

// Gender is the donor-declared gender.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is one of the enumerated genders.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// Donor age bounds enforced at registration.
const (
	MinDonorAge = 18
	MaxDonorAge = 100
)

var ErrDonorNotFound = errors.New("donor not found")
var ErrDonorEmailExists = errors.New("donor email already registered")

// Donor is a registered blood donor. Only IsAvailable is mutable after
// creation; every other field is fixed at registration time.
type Donor struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Age          int        `json:"age"`
	Gender       Gender     `json:"gender"`
	BloodGroup   BloodGroup `json:"blood_group"`
	ContactPhone string     `json:"contact_phone"`
	ContactEmail string     `json:"contact_email"`
	City         string     `json:"city"`
	IsAvailable  bool       `json:"is_available"`
	CreatedAt    time.Time  `json:"created_at"`
}
