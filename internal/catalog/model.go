package catalog

import (
	"time"

	"github.com/Suleymanaz/DB-TECHv2/internal/pricing"
)

// Product is a stock card in the tenant catalog.
type Product struct {
	ID                int64           `json:"id"`
	CompanyID         int64           `json:"company_id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Unit              string          `json:"unit"`
	Stock             int64           `json:"stock"`
	CriticalThreshold int64           `json:"critical_threshold"`
	Pricing           pricing.Pricing `json:"pricing"`
	SellingPrice      float64         `json:"selling_price"`
	Archived          bool            `json:"archived"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Critical reports whether the product is at or below its reorder threshold.
func (p Product) Critical() bool {
	return p.Stock <= p.CriticalThreshold
}

// Category and unit names are tenant configuration; both are small closed
// sets validated on update.
type Category struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
}

type Unit struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
}
