package service

import "github.com/shopspring/decimal"

const (
	IdentityNumberLength = 13
	MinApplicantAge      = 18
	MaxApplicantAge      = 65

	LoanTermDays       = 360 // daily payment = total / LoanTermDays
	PaymentMonthDays   = 30  // monthly payment = daily * PaymentMonthDays
	AffordabilityRatio = 10  // income must exceed this multiple of the monthly payment

	MaxMonthlyIncome = 100_000_000 // upper bound accepted by the eligibility check
)

var (
	loanTermDays     = decimal.NewFromInt(LoanTermDays)
	paymentMonthDays = decimal.NewFromInt(PaymentMonthDays)

	// affordableMonthDays is AffordabilityRatio monthly payments in days.
	affordableMonthDays = decimal.NewFromInt(AffordabilityRatio * PaymentMonthDays)
)

// riskBands are inclusive age ranges, checked in order.
var riskBands = []struct {
	minAge, maxAge int
	deposit        string
	interest       string
}{
	{18, 30, "0.10", "0.20"},
	{31, 50, "0.15", "0.18"},
	{51, 65, "0.20", "0.22"},
}
