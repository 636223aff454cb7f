package pricing

import "math"

// LoyaltyAccount is the customer's loyalty snapshot used for
// redemption and accrual math. Points is a read-only snapshot; the
// authoritative balance lives on the customer record.
type LoyaltyAccount struct {
	IsMember bool
	Points   int
}

// MaxRedeemablePoints returns the largest number of points the account
// may redeem against the given total: never more than the balance and
// never more than the total covers at the configured point value.
func MaxRedeemablePoints(account LoyaltyAccount, totalBeforePoints, pointValue float64) int {
	if !account.IsMember {
		return 0
	}
	if pointValue <= 0 || totalBeforePoints <= 0 {
		return 0
	}
	byTotal := int(math.Floor(totalBeforePoints / pointValue))
	if account.Points < byTotal {
		return account.Points
	}
	return byTotal
}

// PointsToEarn returns the points a member accrues from the
// transaction: floor(totalBeforePoints / minPurchasePerPoint).
// Non-members and empty carts earn nothing.
func PointsToEarn(account LoyaltyAccount, totalBeforePoints, minPurchasePerPoint float64) int {
	if !account.IsMember {
		return 0
	}
	if minPurchasePerPoint <= 0 || totalBeforePoints <= 0 {
		return 0
	}
	return int(math.Floor(totalBeforePoints / minPurchasePerPoint))
}

// RedemptionValue converts a point count to a currency amount
func RedemptionValue(points int, pointValue float64) float64 {
	if points <= 0 {
		return 0
	}
	return float64(points) * pointValue
}
