package domain

import "github.com/shopspring/decimal"

// RiskTier is the (deposit, interest) pair selected by applicant age.
type RiskTier struct {
	DepositRate  decimal.Decimal `json:"deposit_rate"`
	InterestRate decimal.Decimal `json:"interest_rate"`
}

type LoanQuote struct {
	Principal      decimal.Decimal `json:"loan_principal"`
	TotalAmount    decimal.Decimal `json:"total_loan_amount"`
	DailyPayment   decimal.Decimal `json:"daily_payment"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
}

type DeviceQuote struct {
	Device Device    `json:"device"`
	Quote  LoanQuote `json:"quote"`
}

type EligibilityInput struct {
	IdentityNumber string          `json:"sa_id_number"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
}

type EligibilityResult struct {
	IdentityValid bool          `json:"identity_valid"`
	AgeValid      bool          `json:"age_valid"`
	Age           *int          `json:"age,omitempty"`
	Tier          *RiskTier     `json:"risk_tier,omitempty"`
	Devices       []DeviceQuote `json:"devices"`
}
