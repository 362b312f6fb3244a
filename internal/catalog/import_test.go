package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
	"github.com/Suleymanaz/DB-TECHv2/internal/pricing"
)

func TestParseImportCSVShortForm(t *testing.T) {
	input := `SKU,Name,Category,Unit,Stock,CriticalThreshold,PurchasePrice,SellingPrice
CBL-001,Cat6 Cable 305m,Cabling,box,12,3,40,75
SW-24,24 Port Switch,Network,pcs,5,2,110.50,180`

	products, err := ParseImportCSV(strings.NewReader(input), 7)
	require.NoError(t, err)
	require.Len(t, products, 2)

	first := products[0]
	require.Equal(t, int64(7), first.CompanyID)
	require.Equal(t, "CBL-001", first.SKU)
	require.Equal(t, int64(12), first.Stock)
	require.Equal(t, 1.0, first.Pricing.ExchangeRate)
	require.Equal(t, pricing.StandardVATRate, first.Pricing.VATRate)
	require.Zero(t, first.Pricing.OtherExpenses)
	require.Equal(t, 75.0, first.SellingPrice)
}

func TestParseImportCSVLongForm(t *testing.T) {
	input := `SKU,Name,Category,Unit,Stock,CriticalThreshold,PurchasePrice,ExchangeRate,VATRate,OtherExpenses,SellingPrice
CAM-01,Dome Camera,CCTV,pcs,10,2,10,2,20,5,60`

	products, err := ParseImportCSV(strings.NewReader(input), 1)
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	require.Equal(t, 2.0, p.Pricing.ExchangeRate)
	require.Equal(t, 0.20, p.Pricing.VATRate)
	require.Equal(t, 5.0, p.Pricing.OtherExpenses)
	// (10 × 2) × 1.20 + 5
	require.InDelta(t, 29.0, pricing.LandedUnitCost(p.Pricing), 1e-9)
}

func TestParseImportCSVRejectsWholeBatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			"bad stock",
			`SKU,Name,Category,Unit,Stock,CriticalThreshold,PurchasePrice,SellingPrice
CBL-001,Cat6 Cable,Cabling,box,twelve,3,40,75`,
		},
		{
			"wrong column count",
			`SKU,Name,Category,Unit,Stock,CriticalThreshold,PurchasePrice,SellingPrice
CBL-001,Cat6 Cable,Cabling,box,12,3`,
		},
		{
			"missing sku",
			`SKU,Name,Category,Unit,Stock,CriticalThreshold,PurchasePrice,SellingPrice
,Cat6 Cable,Cabling,box,12,3,40,75`,
		},
		{
			"header only",
			`SKU,Name,Category,Unit,Stock,CriticalThreshold,PurchasePrice,SellingPrice`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			products, err := ParseImportCSV(strings.NewReader(tc.input), 1)
			require.ErrorIs(t, err, httpx.ErrValidation)
			require.Nil(t, products)
		})
	}
}

func TestParseImportCSVOneBadRowAbortsAll(t *testing.T) {
	input := `SKU,Name,Category,Unit,Stock,CriticalThreshold,PurchasePrice,SellingPrice
CBL-001,Cat6 Cable,Cabling,box,12,3,40,75
CBL-002,Cat6 Cable Slim,Cabling,box,12,3,not-a-price,75`

	products, err := ParseImportCSV(strings.NewReader(input), 1)
	require.ErrorIs(t, err, httpx.ErrValidation)
	require.Contains(t, err.Error(), "row 3")
	require.Nil(t, products)
}
