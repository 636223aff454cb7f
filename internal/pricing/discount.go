package pricing

import "github.com/danuwijaya/tokopos-api/internal/domain/enum"

// DiscountPolicy is the resolved discount applied to a cart. At most
// one policy is active on a cart at a time. Eligibility filtering
// (member-only, specific customer) happens before a policy is
// selected, not here.
type DiscountPolicy struct {
	Type        enum.DiscountType
	Value       float64
	MinPurchase float64
	MaxDiscount float64
}

// ComputeDiscount returns the discount amount for the given base
// total. A nil policy or a base below the policy's minimum purchase
// yields 0. Percentage discounts are capped at MaxDiscount when the
// cap is nonzero. Fixed discounts are not clamped to the base amount;
// the totals aggregator floors the final total at 0.
func ComputeDiscount(policy *DiscountPolicy, baseAmount float64) float64 {
	if policy == nil {
		return 0
	}
	if baseAmount < policy.MinPurchase {
		return 0
	}

	switch policy.Type {
	case enum.DiscountTypePercentage:
		amount := baseAmount * policy.Value / 100
		if policy.MaxDiscount > 0 && amount > policy.MaxDiscount {
			amount = policy.MaxDiscount
		}
		return amount
	case enum.DiscountTypeFixed:
		return policy.Value
	default:
		return 0
	}
}
