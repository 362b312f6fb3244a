package checkout

// Totals is the money summary of a cart. TotalDiscount is derived: the gap
// between the undiscounted subtotal and what the counterparty actually pays.
type Totals struct {
	Subtotal      float64 `json:"subtotal"`
	TotalDiscount float64 `json:"total_discount"`
	TotalAmount   float64 `json:"total_amount"`
}

// TaxLine groups cart lines sharing a VAT rate. Amounts are tax-inclusive
// line totals; Tax is the portion of that amount that is VAT.
type TaxLine struct {
	VATRate float64 `json:"vat_rate"`
	Base    float64 `json:"base"`
	Tax     float64 `json:"tax"`
}

func (c *Cart) Totals() Totals {
	var t Totals
	for _, line := range c.Lines {
		t.Subtotal += line.Gross()
		t.TotalAmount += line.Total()
	}
	t.TotalDiscount = t.Subtotal - t.TotalAmount
	return t
}

// TaxBreakdown splits the discounted cart total by VAT rate, treating line
// totals as tax inclusive.
func (c *Cart) TaxBreakdown() []TaxLine {
	index := make(map[float64]int)
	var out []TaxLine
	for _, line := range c.Lines {
		total := line.Total()
		base := total / (1 + line.VATRate)
		i, ok := index[line.VATRate]
		if !ok {
			index[line.VATRate] = len(out)
			out = append(out, TaxLine{VATRate: line.VATRate, Base: base, Tax: total - base})
			continue
		}
		out[i].Base += base
		out[i].Tax += total - base
	}
	return out
}
