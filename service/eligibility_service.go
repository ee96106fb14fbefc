package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"phone-loan/domain"
	"phone-loan/repository"
)

var maxMonthlyIncome = decimal.NewFromInt(MaxMonthlyIncome)

// roundQuote rounds every amount to cents for presentation.
func roundQuote(q domain.LoanQuote) domain.LoanQuote {
	return domain.LoanQuote{
		Principal:      q.Principal.Round(2),
		TotalAmount:    q.TotalAmount.Round(2),
		DailyPayment:   q.DailyPayment.Round(2),
		MonthlyPayment: q.MonthlyPayment.Round(2),
	}
}

// EligibilityService answers one-off "what can this applicant finance"
// questions without creating a draft.
type EligibilityService struct {
	catalog repository.DeviceCatalog
	now     func() time.Time
}

// NewEligibilityService creates an EligibilityService over catalog. A nil
// clock uses time.Now.
func NewEligibilityService(catalog repository.DeviceCatalog, now func() time.Time) *EligibilityService {
	if now == nil {
		now = time.Now
	}
	return &EligibilityService{catalog: catalog, now: now}
}

// Evaluate validates the identity number, resolves the applicant's risk tier
// and lists the affordable devices with their quotes. An invalid identity or
// ineligible age is reported in the result, not as an error.
func (s *EligibilityService) Evaluate(
	ctx context.Context,
	input domain.EligibilityInput,
) (domain.EligibilityResult, error) {

	if !input.MonthlyIncome.IsPositive() {
		return domain.EligibilityResult{}, domain.ErrInvalidIncome
	}
	if input.MonthlyIncome.GreaterThan(maxMonthlyIncome) {
		return domain.EligibilityResult{}, fmt.Errorf("%w: exceeds the maximum of %d", domain.ErrInvalidIncome, MaxMonthlyIncome)
	}

	today := s.now()
	identity := ParseIdentity(input.IdentityNumber, today)
	tier, age := tierForBirthDate(identity.BirthDate, today)

	result := domain.EligibilityResult{
		IdentityValid: identity.Valid,
		Age:           age,
		Devices:       []domain.DeviceQuote{},
	}
	// A birth date behind a failed checksum is never tiered.
	if !identity.Valid || tier == nil {
		return result, nil
	}
	result.AgeValid = true
	result.Tier = tier

	devices, err := s.catalog.ListDevices(ctx)
	if err != nil {
		return domain.EligibilityResult{}, fmt.Errorf("list devices: %w", err)
	}

	for _, q := range AffordableQuotes(devices, decimal.NewNullDecimal(input.MonthlyIncome), tier) {
		result.Devices = append(result.Devices, domain.DeviceQuote{
			Device: q.Device,
			Quote:  roundQuote(q.Quote),
		})
	}
	return result, nil
}
