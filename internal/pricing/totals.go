package pricing

// TotalsInput carries everything the totals computation depends on.
// Configuration values (tax rate, point value) are passed explicitly;
// there is no ambient settings state in this package.
type TotalsInput struct {
	Subtotal       float64
	TaxEnabled     bool
	TaxRate        float64 // percentage, e.g. 11 for 11%
	DiscountAmount float64
	RedeemPoints   bool
	PointsToRedeem int
	PointValue     float64
	TenderedAmount float64
}

// Totals is the full derived pricing breakdown for a cart. All values
// are Rupiah at full precision; rounding is a display concern.
type Totals struct {
	Subtotal          float64
	TaxAmount         float64
	DiscountAmount    float64
	TotalBeforePoints float64
	PointsRedemption  float64
	TotalAmount       float64
	ChangeAmount      float64
}

// ComputeTotals derives the payable total and change from the inputs.
// TotalAmount is floored at 0 even when discount plus redemption
// exceed the taxed subtotal. ChangeAmount may be negative while the
// cashier is still entering a tender; payment is only permitted once
// the tendered amount covers the total.
func ComputeTotals(in TotalsInput) Totals {
	t := Totals{
		Subtotal:       in.Subtotal,
		DiscountAmount: in.DiscountAmount,
	}

	if in.TaxEnabled {
		t.TaxAmount = in.Subtotal * in.TaxRate / 100
	}

	t.TotalBeforePoints = in.Subtotal + t.TaxAmount - in.DiscountAmount

	if in.RedeemPoints {
		t.PointsRedemption = RedemptionValue(in.PointsToRedeem, in.PointValue)
	}

	t.TotalAmount = t.TotalBeforePoints - t.PointsRedemption
	if t.TotalAmount < 0 {
		t.TotalAmount = 0
	}

	t.ChangeAmount = in.TenderedAmount - t.TotalAmount
	return t
}

// CanPay reports whether the tendered amount covers the total
func (t Totals) CanPay() bool {
	return t.ChangeAmount >= 0
}
