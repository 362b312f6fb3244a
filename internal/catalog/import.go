package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
	"github.com/Suleymanaz/DB-TECHv2/internal/pricing"
)

// Bulk import column order. The short form carries 8 columns; the long form
// adds exchange rate, VAT percentage and other expenses before the selling
// price.
//
//	SKU,Name,Category,Unit,Stock,CriticalThreshold,PurchasePrice,SellingPrice
//	SKU,Name,Category,Unit,Stock,CriticalThreshold,PurchasePrice,ExchangeRate,VATRate%,OtherExpenses,SellingPrice
const (
	importShortColumns = 8
	importLongColumns  = 11
)

// ParseImportCSV reads a bulk product import file. Any malformed row aborts
// the whole batch with a single aggregate error; there is no partial-row
// recovery.
func ParseImportCSV(r io.Reader, companyID int64) ([]Product, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed import file", httpx.ErrValidation)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: import file contains no data rows", httpx.ErrValidation)
	}

	// First row is the header.
	products := make([]Product, 0, len(records)-1)
	for i, record := range records[1:] {
		product, err := parseImportRow(record, companyID)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %s", httpx.ErrValidation, i+2, err)
		}
		products = append(products, product)
	}
	return products, nil
}

func parseImportRow(cols []string, companyID int64) (Product, error) {
	if len(cols) != importShortColumns && len(cols) != importLongColumns {
		return Product{}, errors.New("unexpected column count")
	}
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}

	stock, err := strconv.ParseInt(cols[4], 10, 64)
	if err != nil {
		return Product{}, fmt.Errorf("stock: %s", cols[4])
	}
	threshold, err := strconv.ParseInt(cols[5], 10, 64)
	if err != nil {
		return Product{}, fmt.Errorf("critical threshold: %s", cols[5])
	}
	purchasePrice, err := strconv.ParseFloat(cols[6], 64)
	if err != nil {
		return Product{}, fmt.Errorf("purchase price: %s", cols[6])
	}

	cost := pricing.Pricing{
		PurchasePrice: purchasePrice,
		ExchangeRate:  1,
		VATRate:       pricing.StandardVATRate,
	}
	sellingCol := 7
	if len(cols) == importLongColumns {
		if cost.ExchangeRate, err = strconv.ParseFloat(cols[7], 64); err != nil {
			return Product{}, fmt.Errorf("exchange rate: %s", cols[7])
		}
		vatPct, err := strconv.ParseFloat(cols[8], 64)
		if err != nil {
			return Product{}, fmt.Errorf("vat rate: %s", cols[8])
		}
		cost.VATRate = vatPct / 100
		if cost.OtherExpenses, err = strconv.ParseFloat(cols[9], 64); err != nil {
			return Product{}, fmt.Errorf("other expenses: %s", cols[9])
		}
		sellingCol = 10
	}
	sellingPrice, err := strconv.ParseFloat(cols[sellingCol], 64)
	if err != nil {
		return Product{}, fmt.Errorf("selling price: %s", cols[sellingCol])
	}

	if cols[0] == "" || cols[1] == "" {
		return Product{}, errors.New("sku and name are required")
	}

	return Product{
		CompanyID:         companyID,
		SKU:               cols[0],
		Name:              cols[1],
		Category:          cols[2],
		Unit:              cols[3],
		Stock:             stock,
		CriticalThreshold: threshold,
		Pricing:           cost,
		SellingPrice:      sellingPrice,
	}, nil
}
