package trading

import "github.com/Suleymanaz/DB-TECHv2/internal/checkout"

// StockDelta is the signed stock movement a transaction line applies to its
// product. IN increases stock, OUT decreases it, and a supplier return
// (IN with the return flag) inverts to decreasing despite its direction.
// Labor lines never move stock.
func StockDelta(direction checkout.Direction, isReturn bool, kind checkout.LineKind, quantity int64) int64 {
	if kind == checkout.LineLabor {
		return 0
	}
	sign := int64(-1)
	if direction == checkout.DirectionIn {
		sign = 1
		if isReturn {
			sign = -1
		}
	}
	return sign * quantity
}
