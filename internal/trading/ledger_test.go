package trading

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Suleymanaz/DB-TECHv2/internal/checkout"
)

func TestStockDelta(t *testing.T) {
	tests := []struct {
		name      string
		direction checkout.Direction
		isReturn  bool
		kind      checkout.LineKind
		quantity  int64
		want      int64
	}{
		{"sale decreases", checkout.DirectionOut, false, checkout.LineProduct, 5, -5},
		{"purchase increases", checkout.DirectionIn, false, checkout.LineProduct, 5, 5},
		{"supplier return decreases despite IN", checkout.DirectionIn, true, checkout.LineProduct, 5, -5},
		{"sale return still decreases", checkout.DirectionOut, true, checkout.LineProduct, 5, -5},
		{"labor never moves stock", checkout.DirectionOut, false, checkout.LineLabor, 5, 0},
		{"labor on purchase", checkout.DirectionIn, false, checkout.LineLabor, 3, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, StockDelta(tc.direction, tc.isReturn, tc.kind, tc.quantity))
		})
	}
}

func TestStockDeltaSignExamples(t *testing.T) {
	// stock 20, OUT qty 5 → 15
	require.Equal(t, int64(15), 20+StockDelta(checkout.DirectionOut, false, checkout.LineProduct, 5))
	// stock 20, IN return qty 5 → 15, not 25
	require.Equal(t, int64(15), 20+StockDelta(checkout.DirectionIn, true, checkout.LineProduct, 5))
}
