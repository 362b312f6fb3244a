// Package pricing implements the landed-cost and valuation-cost formulas.
//
// Two cost bases exist and must not be conflated: the landed unit cost prices
// inbound purchase lines, while the net unit cost values inventory for
// accounting export.
package pricing

// StandardVATRate is the default tax rate applied to lines that carry no
// product-configured rate, such as labor charges.
const StandardVATRate = 0.20

// Pricing is the cost structure configured on a product.
type Pricing struct {
	PurchasePrice float64 `json:"purchase_price"`
	ExchangeRate  float64 `json:"exchange_rate"`
	VATRate       float64 `json:"vat_rate"`
	OtherExpenses float64 `json:"other_expenses"`
}

// LandedUnitCost returns the per-unit cost including currency conversion,
// tax and allocated incidental expenses:
//
//	(purchasePrice × exchangeRate) × (1 + vatRate) + otherExpenses
//
// Inputs are not validated; malformed values flow through arithmetically.
func LandedUnitCost(p Pricing) float64 {
	return p.PurchasePrice*p.ExchangeRate*(1+p.VATRate) + p.OtherExpenses
}

// NetUnitCost returns the tax-exclusive per-unit cost used for inventory
// valuation: purchasePrice × exchangeRate.
func NetUnitCost(p Pricing) float64 {
	return p.PurchasePrice * p.ExchangeRate
}
