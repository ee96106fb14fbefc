package domain

import "github.com/shopspring/decimal"

// Device is a financeable handset from the catalog. Pricing uses the
// applicant's risk tier; the catalog's own deposit and rate are informational.
type Device struct {
	ID                 int64           `json:"id"`
	ModelName          string          `json:"model_name"`
	CashPrice          decimal.Decimal `json:"cash_price"`
	DepositPercent     decimal.Decimal `json:"deposit_percent"`
	AnnualInterestRate decimal.Decimal `json:"annual_interest_rate"`
}
