package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Suleymanaz/DB-TECHv2/internal/pricing"
)

func TestProductFormDefaultsOmittedRates(t *testing.T) {
	// A JSON payload without exchange_rate or vat_rate decodes both as zero.
	form := ProductForm{
		SKU:           "SW-24",
		Name:          "24 Port Switch",
		Category:      "Network",
		Unit:          "pcs",
		PurchasePrice: 100,
		SellingPrice:  180,
	}

	p := form.toProduct(7)
	require.Equal(t, int64(7), p.CompanyID)
	require.InDelta(t, 1, p.Pricing.ExchangeRate, 1e-9)
	require.InDelta(t, pricing.StandardVATRate, p.Pricing.VATRate, 1e-9)
	require.InDelta(t, 120, pricing.LandedUnitCost(p.Pricing), 1e-9)
	require.InDelta(t, 100, pricing.NetUnitCost(p.Pricing), 1e-9)
}

func TestProductFormKeepsExplicitRates(t *testing.T) {
	form := ProductForm{
		SKU:           "CAM-01",
		Name:          "Dome Camera",
		Category:      "CCTV",
		Unit:          "pcs",
		PurchasePrice: 10,
		ExchangeRate:  2,
		VATRate:       0.10,
		OtherExpenses: 5,
		SellingPrice:  60,
	}

	p := form.toProduct(7)
	require.InDelta(t, 2, p.Pricing.ExchangeRate, 1e-9)
	require.InDelta(t, 0.10, p.Pricing.VATRate, 1e-9)
	require.InDelta(t, 27, pricing.LandedUnitCost(p.Pricing), 1e-9)
}
