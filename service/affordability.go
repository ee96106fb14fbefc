package service

import (
	"github.com/shopspring/decimal"

	"phone-loan/domain"
)

// Affordable returns the devices whose monthly payment is strictly less than
// a tenth of income. Without a positive income or a resolvable tier nothing
// qualifies.
func Affordable(devices []domain.Device, income decimal.NullDecimal, tier *domain.RiskTier) []domain.Device {
	quotes := AffordableQuotes(devices, income, tier)
	out := make([]domain.Device, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, q.Device)
	}
	return out
}

// AffordableQuotes is Affordable with the quote for each kept device. The
// test is scaled by LoanTermDays and compared on the exact total, never on
// the rounded daily payment.
func AffordableQuotes(devices []domain.Device, income decimal.NullDecimal, tier *domain.RiskTier) []domain.DeviceQuote {
	out := []domain.DeviceQuote{}
	if !income.Valid || !income.Decimal.IsPositive() || tier == nil {
		return out
	}

	for _, device := range devices {
		quote := Price(device, *tier)
		if income.Decimal.Mul(loanTermDays).GreaterThan(quote.TotalAmount.Mul(affordableMonthDays)) {
			out = append(out, domain.DeviceQuote{Device: device, Quote: quote})
		}
	}
	return out
}
