package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phone-loan/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func device(id int64, price string) domain.Device {
	return domain.Device{ID: id, ModelName: "device", CashPrice: dec(price)}
}

func TestAgeOn(t *testing.T) {
	birth := date(1994, time.June, 15)

	assert.Equal(t, 30, AgeOn(birth, date(2025, time.June, 14)))
	assert.Equal(t, 31, AgeOn(birth, date(2025, time.June, 15)))
	assert.Equal(t, 31, AgeOn(birth, date(2025, time.July, 1)))
	assert.Equal(t, 30, AgeOn(birth, date(2025, time.January, 31)))
}

func TestRiskTierForAge(t *testing.T) {
	tests := []struct {
		age      int
		ok       bool
		deposit  string
		interest string
	}{
		{17, false, "", ""},
		{18, true, "0.10", "0.20"},
		{30, true, "0.10", "0.20"},
		{31, true, "0.15", "0.18"},
		{50, true, "0.15", "0.18"},
		{51, true, "0.20", "0.22"},
		{65, true, "0.20", "0.22"},
		{66, false, "", ""},
		{-1, false, "", ""},
	}

	for _, tt := range tests {
		tier, ok := RiskTierForAge(tt.age)
		require.Equal(t, tt.ok, ok, "age %d", tt.age)
		if !ok {
			continue
		}
		assert.True(t, dec(tt.deposit).Equal(tier.DepositRate), "age %d deposit", tt.age)
		assert.True(t, dec(tt.interest).Equal(tier.InterestRate), "age %d interest", tt.age)
	}
}

func TestRiskTier_BandEdgeOnBirthday(t *testing.T) {
	// 1994-06-15 turns 31 on testToday; 1994-06-16 is still 30.
	turned31 := ParseIdentity("9406155009087", testToday)
	still30 := ParseIdentity("9406165009085", testToday)
	require.True(t, turned31.Valid)
	require.True(t, still30.Valid)

	tierA, ageA := tierForBirthDate(turned31.BirthDate, testToday)
	tierB, ageB := tierForBirthDate(still30.BirthDate, testToday)
	require.NotNil(t, tierA)
	require.NotNil(t, tierB)

	assert.Equal(t, 31, *ageA)
	assert.Equal(t, 30, *ageB)
	assert.False(t, tierA.DepositRate.Equal(tierB.DepositRate))
}

func TestPrice_TenThousandAtAgeTwentyFive(t *testing.T) {
	tier, ok := RiskTierForAge(25)
	require.True(t, ok)

	q := Price(device(1, "10000"), tier)

	assert.True(t, dec("9000").Equal(q.Principal), q.Principal.String())
	assert.True(t, dec("10800").Equal(q.TotalAmount), q.TotalAmount.String())
	assert.True(t, dec("30").Equal(q.DailyPayment), q.DailyPayment.String())
	assert.True(t, dec("900").Equal(q.MonthlyPayment), q.MonthlyPayment.String())
}

func TestPrice_Properties(t *testing.T) {
	for _, age := range []int{18, 30, 31, 50, 51, 65} {
		tier, ok := RiskTierForAge(age)
		require.True(t, ok)

		for _, price := range []string{"1", "1999", "3999.99", "10000", "17999"} {
			d := device(1, price)
			q := Price(d, tier)

			assert.True(t, q.Principal.LessThanOrEqual(d.CashPrice), "age %d price %s", age, price)
			assert.True(t, q.Principal.LessThanOrEqual(q.TotalAmount), "age %d price %s", age, price)
			assert.True(t, q.MonthlyPayment.Equal(q.DailyPayment.Mul(decimal.NewFromInt(30))), "age %d price %s", age, price)
			if age <= 50 {
				// (1-deposit)*(1+interest) >= 1 only holds for the two younger bands.
				assert.True(t, d.CashPrice.LessThanOrEqual(q.TotalAmount), "age %d price %s", age, price)
			}
		}
	}
}

func TestPrice_IsPure(t *testing.T) {
	tier, _ := RiskTierForAge(40)
	d := device(7, "4999")

	assert.Equal(t, Price(d, tier), Price(d, tier))
}
