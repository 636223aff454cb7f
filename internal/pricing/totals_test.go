package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
)

func TestComputeTotals_TaxedSaleExactTender(t *testing.T) {
	// Subtotal 100,000 with 11% tax, paid exactly
	totals := ComputeTotals(TotalsInput{
		Subtotal:       100000,
		TaxEnabled:     true,
		TaxRate:        11,
		TenderedAmount: 111000,
	})

	assert.Equal(t, 11000.0, totals.TaxAmount)
	assert.Equal(t, 111000.0, totals.TotalBeforePoints)
	assert.Equal(t, 111000.0, totals.TotalAmount)
	assert.Equal(t, 0.0, totals.ChangeAmount)
	assert.True(t, totals.CanPay())
}

func TestComputeTotals_CappedPercentageDiscount(t *testing.T) {
	// Subtotal 50,000; 10% discount capped at 4,000; tax disabled
	policy := &DiscountPolicy{
		Type:        enum.DiscountTypePercentage,
		Value:       10,
		MaxDiscount: 4000,
	}
	discount := ComputeDiscount(policy, 50000)

	totals := ComputeTotals(TotalsInput{
		Subtotal:       50000,
		DiscountAmount: discount,
	})

	assert.Equal(t, 4000.0, totals.DiscountAmount)
	assert.Equal(t, 46000.0, totals.TotalAmount)
}

func TestComputeTotals_PointRedemption(t *testing.T) {
	// Member with 50 points at value 100 against a 20,000 total
	account := LoyaltyAccount{IsMember: true, Points: 50}
	maxPoints := MaxRedeemablePoints(account, 20000, 100)
	assert.Equal(t, 50, maxPoints)

	totals := ComputeTotals(TotalsInput{
		Subtotal:       20000,
		RedeemPoints:   true,
		PointsToRedeem: maxPoints,
		PointValue:     100,
	})

	assert.Equal(t, 5000.0, totals.PointsRedemption)
	assert.Equal(t, 15000.0, totals.TotalAmount)
}

func TestComputeTotals_InsufficientTender(t *testing.T) {
	// Tender 40,000 against total 46,000: payment must not be allowed
	totals := ComputeTotals(TotalsInput{
		Subtotal:       50000,
		DiscountAmount: 4000,
		TenderedAmount: 40000,
	})

	assert.Equal(t, 46000.0, totals.TotalAmount)
	assert.Equal(t, -6000.0, totals.ChangeAmount)
	assert.False(t, totals.CanPay())
}

func TestComputeTotals_TotalNeverNegative(t *testing.T) {
	totals := ComputeTotals(TotalsInput{
		Subtotal:       10000,
		DiscountAmount: 8000,
		RedeemPoints:   true,
		PointsToRedeem: 100,
		PointValue:     100,
	})

	assert.Equal(t, 0.0, totals.TotalAmount,
		"discount plus redemption past the subtotal floors at zero")
}

func TestComputeTotals_TaxDisabled(t *testing.T) {
	totals := ComputeTotals(TotalsInput{
		Subtotal: 100000,
		TaxRate:  11,
	})
	assert.Equal(t, 0.0, totals.TaxAmount)
	assert.Equal(t, 100000.0, totals.TotalAmount)
}

func TestComputeTotals_RedemptionIgnoredWhenToggleOff(t *testing.T) {
	totals := ComputeTotals(TotalsInput{
		Subtotal:       50000,
		PointsToRedeem: 100,
		PointValue:     100,
	})
	assert.Equal(t, 0.0, totals.PointsRedemption)
	assert.Equal(t, 50000.0, totals.TotalAmount)
}
