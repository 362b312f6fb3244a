package checkout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Suleymanaz/DB-TECHv2/internal/catalog"
	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
	"github.com/Suleymanaz/DB-TECHv2/internal/pricing"
)

func product(id int64, stock int64) catalog.Product {
	return catalog.Product{
		ID:    id,
		SKU:   "CAM-01",
		Name:  "Dome Camera",
		Unit:  "pcs",
		Stock: stock,
		Pricing: pricing.Pricing{
			PurchasePrice: 10,
			ExchangeRate:  2,
			VATRate:       0.20,
			OtherExpenses: 5,
		},
		SellingPrice: 60,
	}
}

func TestNewCartDirection(t *testing.T) {
	_, err := NewCart("SIDEWAYS", false)
	require.ErrorIs(t, err, httpx.ErrValidation)

	cart, err := NewCart(DirectionOut, false)
	require.NoError(t, err)
	require.True(t, cart.Empty())
}

func TestAddProductLineValidation(t *testing.T) {
	cart, _ := NewCart(DirectionIn, false)
	p := product(1, 100)

	require.ErrorIs(t, cart.AddProductLine(p, 0, 10, 0), httpx.ErrValidation)
	require.ErrorIs(t, cart.AddProductLine(p, -1, 10, 0), httpx.ErrValidation)
	require.ErrorIs(t, cart.AddProductLine(p, 1, -10, 0), httpx.ErrValidation)
	require.ErrorIs(t, cart.AddProductLine(p, 1, 10, -1), httpx.ErrValidation)
	require.ErrorIs(t, cart.AddProductLine(p, 1, 10, 101), httpx.ErrValidation)
	require.NoError(t, cart.AddProductLine(p, 1, 10, 100))
}

func TestAddProductLineMergesIdenticalLines(t *testing.T) {
	cart, _ := NewCart(DirectionOut, false)
	p := product(1, 100)

	require.NoError(t, cart.AddProductLine(p, 2, 60, 0))
	require.NoError(t, cart.AddProductLine(p, 3, 60, 0))
	require.Len(t, cart.Lines, 1)
	require.Equal(t, int64(5), cart.Lines[0].Quantity)

	// different price keeps its own line
	require.NoError(t, cart.AddProductLine(p, 1, 55, 0))
	require.Len(t, cart.Lines, 2)
}

func TestSaleStockGuardCountsQueuedQuantity(t *testing.T) {
	cart, _ := NewCart(DirectionOut, false)
	p := product(1, 10)

	require.NoError(t, cart.AddProductLine(p, 7, 60, 0))
	err := cart.AddProductLine(p, 4, 60, 0)
	require.ErrorIs(t, err, httpx.ErrValidation)

	// exactly the remainder still fits
	require.NoError(t, cart.AddProductLine(p, 3, 60, 0))
	require.Equal(t, int64(10), cart.QueuedQuantity(1))
}

func TestPurchaseSkipsStockGuard(t *testing.T) {
	purchase, _ := NewCart(DirectionIn, false)
	require.NoError(t, purchase.AddProductLine(product(1, 0), 50, 20, 0))

	supplierReturn, _ := NewCart(DirectionIn, true)
	require.NoError(t, supplierReturn.AddProductLine(product(1, 5), 2, 20, 0))
}

func TestAddLaborLine(t *testing.T) {
	cart, _ := NewCart(DirectionOut, false)

	require.ErrorIs(t, cart.AddLaborLine("", 100), httpx.ErrValidation)
	require.ErrorIs(t, cart.AddLaborLine("Installation", 0), httpx.ErrValidation)
	require.ErrorIs(t, cart.AddLaborLine("Installation", -5), httpx.ErrValidation)

	require.NoError(t, cart.AddLaborLine("Installation", 250))
	line := cart.Lines[0]
	require.Equal(t, LineLabor, line.Kind)
	require.Equal(t, int64(1), line.Quantity)
	require.Equal(t, 250.0, line.UnitPrice)
	require.Equal(t, pricing.StandardVATRate, line.VATRate)
}

func TestRemoveLine(t *testing.T) {
	cart, _ := NewCart(DirectionOut, false)
	require.NoError(t, cart.AddLaborLine("Installation", 250))
	require.NoError(t, cart.AddLaborLine("Cabling", 100))

	require.ErrorIs(t, cart.RemoveLine(5), httpx.ErrValidation)
	require.ErrorIs(t, cart.RemoveLine(-1), httpx.ErrValidation)

	require.NoError(t, cart.RemoveLine(0))
	require.Len(t, cart.Lines, 1)
	require.Equal(t, "Cabling", cart.Lines[0].Description)
}

func TestTotals(t *testing.T) {
	cart, _ := NewCart(DirectionOut, false)
	p := product(1, 100)

	// 100 × 3 × (1 − 0.10) = 270
	require.NoError(t, cart.AddProductLine(p, 3, 100, 10))
	require.InDelta(t, 270.0, cart.Lines[0].Total(), 1e-9)

	require.NoError(t, cart.AddLaborLine("Installation", 50))

	totals := cart.Totals()
	require.InDelta(t, 350.0, totals.Subtotal, 1e-9)
	require.InDelta(t, 320.0, totals.TotalAmount, 1e-9)
	require.InDelta(t, 30.0, totals.TotalDiscount, 1e-9)
}

func TestTotalsZeroDiscountMeansNoGap(t *testing.T) {
	cart, _ := NewCart(DirectionIn, false)
	require.NoError(t, cart.AddProductLine(product(1, 0), 4, 25, 0))

	totals := cart.Totals()
	require.Equal(t, totals.Subtotal, totals.TotalAmount)
	require.Zero(t, totals.TotalDiscount)
}

func TestTaxBreakdownGroupsByRate(t *testing.T) {
	cart, _ := NewCart(DirectionOut, false)
	low := product(1, 100)
	low.Pricing.VATRate = 0.10
	high := product(2, 100)

	require.NoError(t, cart.AddProductLine(low, 1, 110, 0))
	require.NoError(t, cart.AddProductLine(high, 1, 120, 0))
	require.NoError(t, cart.AddLaborLine("Installation", 120)) // standard rate, joins high

	breakdown := cart.TaxBreakdown()
	require.Len(t, breakdown, 2)
	require.InDelta(t, 100.0, breakdown[0].Base, 1e-9)
	require.InDelta(t, 10.0, breakdown[0].Tax, 1e-9)
	require.InDelta(t, 200.0, breakdown[1].Base, 1e-9)
	require.InDelta(t, 40.0, breakdown[1].Tax, 1e-9)
}
