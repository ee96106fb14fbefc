package service

import (
	"time"

	"github.com/shopspring/decimal"

	"phone-loan/domain"
)

// AgeOn returns the number of whole years between birth and today.
func AgeOn(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

// IsEligibleAge reports whether age falls inside the financeable range.
func IsEligibleAge(age int) bool {
	return age >= MinApplicantAge && age <= MaxApplicantAge
}

// RiskTierForAge selects the pricing tier for an applicant age. The second
// result is false outside [MinApplicantAge, MaxApplicantAge].
func RiskTierForAge(age int) (domain.RiskTier, bool) {
	for _, band := range riskBands {
		if age >= band.minAge && age <= band.maxAge {
			return domain.RiskTier{
				DepositRate:  decimal.RequireFromString(band.deposit),
				InterestRate: decimal.RequireFromString(band.interest),
			}, true
		}
	}
	return domain.RiskTier{}, false
}

// Price computes the loan amounts for financing device under tier.
func Price(device domain.Device, tier domain.RiskTier) domain.LoanQuote {
	principal := device.CashPrice.Mul(decimal.NewFromInt(1).Sub(tier.DepositRate))
	total := principal.Mul(decimal.NewFromInt(1).Add(tier.InterestRate))
	daily := total.Div(loanTermDays)

	return domain.LoanQuote{
		Principal:      principal,
		TotalAmount:    total,
		DailyPayment:   daily,
		MonthlyPayment: daily.Mul(paymentMonthDays),
	}
}

// tierForBirthDate resolves the tier for an optional birth date.
func tierForBirthDate(birth *time.Time, today time.Time) (*domain.RiskTier, *int) {
	if birth == nil {
		return nil, nil
	}
	age := AgeOn(*birth, today)
	tier, ok := RiskTierForAge(age)
	if !ok {
		return nil, &age
	}
	return &tier, &age
}
