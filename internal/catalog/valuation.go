package catalog

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/Suleymanaz/DB-TECHv2/internal/pricing"
	"github.com/Suleymanaz/DB-TECHv2/internal/shared"
)

// ValuationLine is a single product's tax-exclusive valuation entry.
type ValuationLine struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	Stock        int64   `json:"stock"`
	NetUnitCost  float64 `json:"net_unit_cost"`
	LineValue    float64 `json:"line_value"`
	SellingPrice float64 `json:"selling_price"`
}

// ValuationReport aggregates the tax-exclusive inventory value of a product
// set, ready for accounting export.
type ValuationReport struct {
	Lines               []ValuationLine `json:"lines"`
	TotalInventoryValue float64         `json:"total_inventory_value"`
}

// Valuation computes the tax-exclusive inventory valuation for the given
// product set. Pure; recomputed fully on every filter change.
func Valuation(products []Product) ValuationReport {
	report := ValuationReport{Lines: make([]ValuationLine, 0, len(products))}
	for _, p := range products {
		netUnitCost := pricing.NetUnitCost(p.Pricing)
		lineValue := netUnitCost * float64(p.Stock)
		report.Lines = append(report.Lines, ValuationLine{
			SKU:          p.SKU,
			Name:         p.Name,
			Category:     p.Category,
			Unit:         p.Unit,
			Stock:        p.Stock,
			NetUnitCost:  netUnitCost,
			LineValue:    lineValue,
			SellingPrice: p.SellingPrice,
		})
		report.TotalInventoryValue += lineValue
	}
	return report
}

// WriteValuationCSV serialises a valuation report with locale-formatted
// currency columns, one row per product plus a trailing total row.
func WriteValuationCSV(w io.Writer, report ValuationReport) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"SKU", "Name", "Category", "Stock", "Unit", "Net Unit Cost", "Line Value", "Selling Price"}); err != nil {
		return err
	}
	for _, line := range report.Lines {
		if err := writer.Write([]string{
			line.SKU,
			line.Name,
			line.Category,
			strconv.FormatInt(line.Stock, 10),
			line.Unit,
			shared.FormatCurrency(line.NetUnitCost),
			shared.FormatCurrency(line.LineValue),
			shared.FormatCurrency(line.SellingPrice),
		}); err != nil {
			return err
		}
	}
	if err := writer.Write([]string{"", "", "", "", "", "", shared.FormatCurrency(report.TotalInventoryValue), ""}); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
