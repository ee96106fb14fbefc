package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusSubmitting Status = "SUBMITTING"
	StatusSubmitted  Status = "SUBMITTED"
	StatusError      Status = "ERROR"
)

// ApplicationState is the cumulative state of one applicant's draft.
type ApplicationState struct {
	CurrentStep           int                 `json:"current_step"`
	FullName              string              `json:"full_name"`
	SAIDNumber            string              `json:"sa_id_number"`
	Birthday              *time.Time          `json:"birthday"`
	MonthlyIncome         decimal.NullDecimal `json:"monthly_income"`
	ProofDocumentName     *string             `json:"proof_document_name"`
	SelectedPhoneID       *int64              `json:"selected_phone_id"`
	LoanPrincipal         decimal.NullDecimal `json:"loan_principal"`
	TotalLoanAmount       decimal.NullDecimal `json:"total_loan_amount"`
	DailyPayment          decimal.NullDecimal `json:"daily_payment"`
	Status                Status              `json:"status"`
	AvailablePhones       []Device            `json:"available_phones"`
	ExistingApplicationID *int64              `json:"existing_application_id"`
}

// NewApplicationState returns the defaults a draft starts from and resets to.
func NewApplicationState() ApplicationState {
	return ApplicationState{
		CurrentStep: 1,
		Status:      StatusPending,
	}
}

// ApplicationPayload is the record written to the application store.
type ApplicationPayload struct {
	FullName        string              `json:"full_name"`
	SAIDNumber      string              `json:"sa_id_number"`
	Birthday        *time.Time          `json:"birthday"`
	MonthlyIncome   decimal.NullDecimal `json:"monthly_income"`
	PhoneID         *int64              `json:"phone_id"`
	LoanPrincipal   decimal.NullDecimal `json:"loan_principal"`
	TotalLoanAmount decimal.NullDecimal `json:"total_loan_amount"`
	DailyPayment    decimal.NullDecimal `json:"daily_payment"`
	Status          Status              `json:"status"`
}
