package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Identity is a parsed 13-digit national identity number.
type Identity struct {
	Number        string
	BirthDate     *time.Time
	Gender        Gender
	ChecksumValid bool
	Valid         bool
}

// IdentityCheck reports the outcome of storing personal information on a draft.
type IdentityCheck struct {
	IdentityValid         bool   `json:"identity_valid"`
	AgeValid              bool   `json:"age_valid"`
	Age                   *int   `json:"age,omitempty"`
	ExistingApplicationID *int64 `json:"existing_application_id,omitempty"`
}
