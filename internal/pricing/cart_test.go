package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(price float64, stock int) CartProduct {
	return CartProduct{
		ID:             uuid.New(),
		Name:           "Kopi Susu Botol",
		SKU:            "KSB-001",
		UnitPrice:      price,
		AvailableStock: stock,
	}
}

func TestAddLine_NewProduct(t *testing.T) {
	cart := NewCart()
	p := testProduct(15000, 5)

	require.NoError(t, cart.AddLine(p))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, p.ID, lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 15000.0, lines[0].UnitPrice)
}

func TestAddLine_IncrementsExistingLine(t *testing.T) {
	cart := NewCart()
	p := testProduct(15000, 5)

	require.NoError(t, cart.AddLine(p))
	require.NoError(t, cart.AddLine(p))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddLine_OutOfStock(t *testing.T) {
	cart := NewCart()
	p := testProduct(15000, 0)

	err := cart.AddLine(p)

	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.True(t, cart.IsEmpty(), "cart must be unchanged after a rejected add")
}

func TestAddLine_StockLimitOnIncrement(t *testing.T) {
	cart := NewCart()
	p := testProduct(15000, 2)

	require.NoError(t, cart.AddLine(p))
	require.NoError(t, cart.AddLine(p))

	err := cart.AddLine(p)
	assert.ErrorIs(t, err, ErrStockLimit)
	assert.Equal(t, 2, cart.Lines()[0].Quantity, "quantity must not change on rejection")
}

func TestUpdateQuantity_PositiveDeltaPastStockRejected(t *testing.T) {
	cart := NewCart()
	p := testProduct(10000, 3)
	require.NoError(t, cart.AddLine(p))

	err := cart.UpdateQuantity(p.ID, 5)

	assert.ErrorIs(t, err, ErrStockLimit)
	assert.Equal(t, 1, cart.Lines()[0].Quantity, "no partial update on rejection")
}

func TestUpdateQuantity_ClampsToStockBoundary(t *testing.T) {
	cart := NewCart()
	p := testProduct(10000, 3)
	require.NoError(t, cart.AddLine(p))

	require.NoError(t, cart.UpdateQuantity(p.ID, 2))
	assert.Equal(t, 3, cart.Lines()[0].Quantity)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	p := testProduct(10000, 3)
	require.NoError(t, cart.AddLine(p))

	require.NoError(t, cart.UpdateQuantity(p.ID, -1))
	assert.True(t, cart.IsEmpty())
}

func TestUpdateQuantity_NegativeDeltaNeverGoesBelowZero(t *testing.T) {
	cart := NewCart()
	p := testProduct(10000, 5)
	require.NoError(t, cart.AddLine(p))
	require.NoError(t, cart.AddLine(p))

	require.NoError(t, cart.UpdateQuantity(p.ID, -10))
	assert.True(t, cart.IsEmpty(), "quantity clamps at zero and the line is removed")
}

func TestUpdateQuantity_UnknownProduct(t *testing.T) {
	cart := NewCart()
	err := cart.UpdateQuantity(uuid.New(), 1)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestRemoveLine(t *testing.T) {
	cart := NewCart()
	p1 := testProduct(10000, 5)
	p2 := testProduct(20000, 5)
	require.NoError(t, cart.AddLine(p1))
	require.NoError(t, cart.AddLine(p2))

	cart.RemoveLine(p1.ID)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, p2.ID, lines[0].ProductID)
}

func TestClear_ResetsSelectionsTogether(t *testing.T) {
	cart := NewCart()
	p := testProduct(10000, 5)
	require.NoError(t, cart.AddLine(p))

	customerID := uuid.New()
	discountID := uuid.New()
	cart.CustomerID = &customerID
	cart.DiscountID = &discountID
	cart.RedeemPoints = true
	cart.PointsToRedeem = 25

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Nil(t, cart.CustomerID)
	assert.Nil(t, cart.DiscountID)
	assert.False(t, cart.RedeemPoints)
	assert.Zero(t, cart.PointsToRedeem)
}

func TestSubtotal(t *testing.T) {
	cart := NewCart()
	p1 := testProduct(10000, 5)
	p2 := testProduct(25000, 5)
	require.NoError(t, cart.AddLine(p1))
	require.NoError(t, cart.AddLine(p1))
	require.NoError(t, cart.AddLine(p2))

	assert.Equal(t, 45000.0, cart.Subtotal())
}

func TestLineTotal_NeverNegative(t *testing.T) {
	line := CartLine{Quantity: 1, UnitPrice: 5000, LineDiscount: 8000}
	assert.Equal(t, 0.0, line.LineTotal())

	line = CartLine{Quantity: 2, UnitPrice: 5000, LineDiscount: 1000}
	assert.Equal(t, 9000.0, line.LineTotal())
}
