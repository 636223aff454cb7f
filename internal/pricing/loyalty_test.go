package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxRedeemablePoints_NonMember(t *testing.T) {
	account := LoyaltyAccount{IsMember: false, Points: 500}
	assert.Equal(t, 0, MaxRedeemablePoints(account, 100000, 100))
}

func TestMaxRedeemablePoints_CappedByBalance(t *testing.T) {
	// 50 points, total 20,000 at point value 100: the total would cover
	// 200 points but the wallet only holds 50
	account := LoyaltyAccount{IsMember: true, Points: 50}
	assert.Equal(t, 50, MaxRedeemablePoints(account, 20000, 100))
}

func TestMaxRedeemablePoints_CappedByTotal(t *testing.T) {
	account := LoyaltyAccount{IsMember: true, Points: 500}
	assert.Equal(t, 150, MaxRedeemablePoints(account, 15000, 100))
}

func TestMaxRedeemablePoints_ZeroTotalOrPointValue(t *testing.T) {
	account := LoyaltyAccount{IsMember: true, Points: 100}
	assert.Equal(t, 0, MaxRedeemablePoints(account, 0, 100))
	assert.Equal(t, 0, MaxRedeemablePoints(account, 10000, 0))
}

func TestPointsToEarn_NonMember(t *testing.T) {
	account := LoyaltyAccount{IsMember: false}
	assert.Equal(t, 0, PointsToEarn(account, 100000, 10000))
}

func TestPointsToEarn_FloorsPartialPoints(t *testing.T) {
	account := LoyaltyAccount{IsMember: true}
	assert.Equal(t, 11, PointsToEarn(account, 111000, 10000))
	assert.Equal(t, 0, PointsToEarn(account, 9999, 10000))
}

func TestPointsToEarn_EmptyCart(t *testing.T) {
	account := LoyaltyAccount{IsMember: true}
	assert.Equal(t, 0, PointsToEarn(account, 0, 10000))
}

func TestRedemptionValue(t *testing.T) {
	assert.Equal(t, 5000.0, RedemptionValue(50, 100))
	assert.Equal(t, 0.0, RedemptionValue(0, 100))
	assert.Equal(t, 0.0, RedemptionValue(-10, 100))
}
