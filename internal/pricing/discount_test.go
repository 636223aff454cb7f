package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
)

func TestComputeDiscount_NoPolicy(t *testing.T) {
	assert.Equal(t, 0.0, ComputeDiscount(nil, 100000))
}

func TestComputeDiscount_BelowMinPurchase(t *testing.T) {
	policy := &DiscountPolicy{
		Type:        enum.DiscountTypePercentage,
		Value:       50,
		MinPurchase: 100000,
	}
	assert.Equal(t, 0.0, ComputeDiscount(policy, 99999),
		"below the minimum purchase the discount is exactly 0 regardless of value")
}

func TestComputeDiscount_Percentage(t *testing.T) {
	policy := &DiscountPolicy{
		Type:  enum.DiscountTypePercentage,
		Value: 10,
	}
	assert.Equal(t, 5000.0, ComputeDiscount(policy, 50000))
}

func TestComputeDiscount_PercentageCappedAtMax(t *testing.T) {
	policy := &DiscountPolicy{
		Type:        enum.DiscountTypePercentage,
		Value:       10,
		MaxDiscount: 4000,
	}
	assert.Equal(t, 4000.0, ComputeDiscount(policy, 50000))
}

func TestComputeDiscount_ZeroMaxMeansUncapped(t *testing.T) {
	policy := &DiscountPolicy{
		Type:        enum.DiscountTypePercentage,
		Value:       20,
		MaxDiscount: 0,
	}
	assert.Equal(t, 40000.0, ComputeDiscount(policy, 200000))
}

func TestComputeDiscount_FixedNotClampedToBase(t *testing.T) {
	policy := &DiscountPolicy{
		Type:  enum.DiscountTypeFixed,
		Value: 30000,
	}
	assert.Equal(t, 30000.0, ComputeDiscount(policy, 20000),
		"fixed discounts may exceed the base; the totals floor handles it")
}

func TestComputeDiscount_FixedRespectsMinPurchase(t *testing.T) {
	policy := &DiscountPolicy{
		Type:        enum.DiscountTypeFixed,
		Value:       5000,
		MinPurchase: 25000,
	}
	assert.Equal(t, 0.0, ComputeDiscount(policy, 20000))
	assert.Equal(t, 5000.0, ComputeDiscount(policy, 25000))
}
