package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLandedUnitCost(t *testing.T) {
	tests := []struct {
		name string
		in   Pricing
		want float64
	}{
		{
			name: "full cost structure",
			in:   Pricing{PurchasePrice: 10, ExchangeRate: 2, VATRate: 0.20, OtherExpenses: 5},
			want: 29,
		},
		{
			name: "local currency no surcharge",
			in:   Pricing{PurchasePrice: 100, ExchangeRate: 1, VATRate: 0.20},
			want: 120,
		},
		{
			name: "zero value",
			in:   Pricing{},
			want: 0,
		},
		{
			// Malformed inputs are not rejected; they propagate.
			name: "negative purchase price propagates",
			in:   Pricing{PurchasePrice: -10, ExchangeRate: 1, VATRate: 0.20, OtherExpenses: 2},
			want: -10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, LandedUnitCost(tt.in), 1e-9)
		})
	}
}

func TestNetUnitCostExcludesVATAndExpenses(t *testing.T) {
	p := Pricing{PurchasePrice: 10, ExchangeRate: 2, VATRate: 0.20, OtherExpenses: 5}
	require.InDelta(t, 20, NetUnitCost(p), 1e-9)
	require.Less(t, NetUnitCost(p), LandedUnitCost(p))
}
